package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	assert.Equal(t, prometheus.DefaultRegisterer, GetRegisterer())

	r := prometheus.NewRegistry()
	Register(r)
	defer func() { metricRegisterer = nil }()
	assert.Equal(t, r, GetRegisterer())

	CodecOps.WithLabelValues("write", SuccessLabel).Inc()
	CodecBytes.WithLabelValues("write").Add(12)
	CodecFailures.WithLabelValues("read", "truncated_stream").Inc()
	CodecPayloadSize.WithLabelValues("write").Observe(12)

	families, err := r.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"datameta_codec_ops_total",
		"datameta_codec_bytes_total",
		"datameta_codec_failures_total",
		"datameta_codec_payload_size_bytes",
	}, names)

	assert.Equal(t, float64(12), testutil.ToFloat64(CodecBytes.WithLabelValues("write")))

	// 重复注册不会 panic。
	assert.NotPanics(t, func() { RegisterCodecMetrics(r) })
}
