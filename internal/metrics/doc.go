// Package metrics records what sitenav did during a run.
//
// Components receive a Recorder and call it unconditionally. NoopRecorder is
// the default; PrometheusRecorder is used when metrics.textfile is set in
// sitenav.yaml, and its registry is written out in the node-exporter
// textfile format at the end of the run:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	defer metrics.WriteTextfile(path, reg)
package metrics
