// Package notes holds the navigation configuration of the Java internals
// notes site. The data is a literal: every call builds the same value.
package notes

import (
	"fmt"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/site"
)

const (
	// ShareHeading is the heading of the first section under /share/.
	ShareHeading = "分享文章"
	// SourceMenu is the label of the source-code dropdown in the nav bar.
	SourceMenu = "源码"
)

// Definition returns the site configuration as plain data.
func Definition() site.Definition {
	return site.Definition{
		Title:       "Java 源码笔记",
		Description: "MyBatis、RocketMQ、Spring、Dubbo 源码阅读与技术分享",
		Lang:        "zh-CN",
		LastUpdated: true,
		Head: []site.HeadTag{
			{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}},
			{Tag: "meta", Attrs: map[string]string{"name": "keywords", "content": "Java,MyBatis,RocketMQ,Spring,Dubbo,源码"}},
		},
		Markdown:    site.MarkdownOptions{LineNumbers: true},
		Nav:         nav(),
		Sidebar:     sidebar(),
		SocialLinks: []site.SocialLink{{Icon: site.IconGitHub, URL: "https://github.com/javanotes/notes"}},
	}
}

// Load validates Definition and returns the immutable config.
func Load() (*site.Config, error) {
	cfg, err := site.New(Definition())
	if err != nil {
		return nil, ferrors.InternalError("built-in site configuration is invalid").WithCause(err).Build()
	}
	return cfg, nil
}

// MustLoad is Load for init-time wiring; it panics on an invalid definition.
func MustLoad() *site.Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("notes: invalid site definition: %v", err))
	}
	return cfg
}

func nav() []site.NavEntry {
	return []site.NavEntry{
		{Label: "首页", Target: "/"},
		{Label: "分享", Target: "/share/"},
		{Label: SourceMenu, Children: []site.NavEntry{
			{Label: "MyBatis", Target: "/mybatis/"},
			{Label: "RocketMQ", Target: "/rocketmq/"},
			{Label: "Spring", Target: "/spring/"},
			{Label: "Dubbo", Target: "/dubbo/"},
		}},
		{Label: "关于", Target: "/about/"},
	}
}

func sidebar() site.SidebarMap {
	return site.NewSidebarMap(
		site.SidebarRoute{Prefix: "/share/", Sections: []site.SidebarSection{
			{Heading: ShareHeading, Items: []site.SidebarItem{
				{Label: "如何高效阅读开源框架源码", Target: "/share/read-source-code"},
				{Label: "从 JDBC 到 MyBatis：一次 SQL 的完整旅程", Target: "/share/jdbc-to-mybatis"},
				{Label: "MyBatis 一级缓存与二级缓存的坑", Target: "/share/mybatis-cache-pitfalls"},
				{Label: "MyBatis 插件实现分页的原理", Target: "/share/mybatis-pagination-plugin"},
				{Label: "RocketMQ 消息不丢失的三道防线", Target: "/share/rocketmq-no-message-loss"},
				{Label: "RocketMQ 顺序消息实践", Target: "/share/rocketmq-ordered-message"},
				{Label: "RocketMQ 事务消息与分布式事务", Target: "/share/rocketmq-transaction-message"},
				{Label: "Spring 循环依赖与三级缓存", Target: "/share/spring-circular-dependency"},
				{Label: "Spring 事务失效的常见场景", Target: "/share/spring-transaction-pitfalls"},
				{Label: "Spring Boot 自动装配原理", Target: "/share/spring-boot-auto-configuration"},
				{Label: "Spring AOP 代理选择：JDK 还是 CGLIB", Target: "/share/spring-aop-proxy"},
				{Label: "Dubbo SPI 与 Java SPI 的差异", Target: "/share/dubbo-spi-vs-java-spi"},
				{Label: "Dubbo 服务暴露与引用全流程", Target: "/share/dubbo-export-and-refer"},
				{Label: "Dubbo 负载均衡策略对比", Target: "/share/dubbo-load-balance"},
				{Label: "Netty 在中间件中的应用", Target: "/share/netty-in-middleware"},
				{Label: "Java 动态代理的几种实现", Target: "/share/java-dynamic-proxy"},
				{Label: "线上问题排查工具箱", Target: "/share/troubleshooting-toolbox"},
			}},
			{Heading: "工具与环境", Collapsed: true, Items: []site.SidebarItem{
				{Label: "调试源码的 IDEA 技巧", Target: "/share/idea-debugging"},
				{Label: "用 Docker 搭建中间件实验环境", Target: "/share/docker-lab"},
			}},
		}},
		site.SidebarRoute{Prefix: "/mybatis/", Sections: []site.SidebarSection{
			{Heading: "MyBatis 源码", Items: []site.SidebarItem{
				{Label: "总览", Target: "/mybatis/"},
				{Label: "配置解析", Target: "/mybatis/configuration"},
				{Label: "SqlSession 与 Executor", Target: "/mybatis/executor"},
				{Label: "Mapper 动态代理", Target: "/mybatis/mapper-proxy"},
				{Label: "StatementHandler 与参数处理", Target: "/mybatis/statement-handler"},
				{Label: "结果集映射", Target: "/mybatis/result-set"},
				{Label: "缓存机制", Target: "/mybatis/cache"},
				{Label: "插件机制", Target: "/mybatis/plugin"},
			}},
		}},
		site.SidebarRoute{Prefix: "/rocketmq/", Sections: []site.SidebarSection{
			{Heading: "RocketMQ 源码", Items: []site.SidebarItem{
				{Label: "总览", Target: "/rocketmq/"},
				{Label: "NameServer", Target: "/rocketmq/nameserver"},
				{Label: "Producer 发送流程", Target: "/rocketmq/producer"},
				{Label: "Broker 存储：CommitLog", Target: "/rocketmq/commitlog"},
				{Label: "ConsumeQueue 与 IndexFile", Target: "/rocketmq/consume-queue"},
				{Label: "Consumer 拉取与负载均衡", Target: "/rocketmq/consumer"},
				{Label: "主从同步", Target: "/rocketmq/ha"},
			}},
		}},
		site.SidebarRoute{Prefix: "/spring/", Sections: []site.SidebarSection{
			{Heading: "Spring 源码", Items: []site.SidebarItem{
				{Label: "总览", Target: "/spring/"},
				{Label: "IoC 容器启动：refresh()", Target: "/spring/ioc-refresh"},
				{Label: "Bean 的生命周期", Target: "/spring/bean-lifecycle"},
				{Label: "AOP 实现原理", Target: "/spring/aop"},
				{Label: "声明式事务", Target: "/spring/transaction"},
			}},
			{Heading: "Spring MVC", Items: []site.SidebarItem{
				{Label: "DispatcherServlet", Target: "/spring/mvc-dispatcher-servlet"},
				{Label: "HandlerMapping 与 HandlerAdapter", Target: "/spring/mvc-handler"},
			}},
		}},
		site.SidebarRoute{Prefix: "/dubbo/", Sections: []site.SidebarSection{
			{Heading: "Dubbo 源码", Items: []site.SidebarItem{
				{Label: "总览", Target: "/dubbo/"},
				{Label: "SPI 扩展机制", Target: "/dubbo/spi"},
				{Label: "服务暴露", Target: "/dubbo/export"},
				{Label: "服务引用", Target: "/dubbo/refer"},
				{Label: "集群容错", Target: "/dubbo/cluster"},
				{Label: "网络通信与编解码", Target: "/dubbo/remoting"},
			}},
		}},
	)
}
