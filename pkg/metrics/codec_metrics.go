// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	codecMetricSubsystem = "codec"
)

var (
	CodecMetricsRegisterOnce sync.Once

	// CodecOps 统计编解码调用次数，按操作与结果区分。
	CodecOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: datametaNamespace,
		Subsystem: codecMetricSubsystem,
		Name:      "ops_total",
		Help:      "编解码调用次数",
	}, []string{opLabelName, resultLabelName})

	// CodecBytes 统计成功编解码的字节总数。
	CodecBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: datametaNamespace,
		Subsystem: codecMetricSubsystem,
		Name:      "bytes_total",
		Help:      "成功编码写出或解码读入的字节总数",
	}, []string{opLabelName})

	// CodecFailures 按错误码统计编解码失败次数。
	CodecFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: datametaNamespace,
		Subsystem: codecMetricSubsystem,
		Name:      "failures_total",
		Help:      "编解码失败次数，按错误码区分",
	}, []string{opLabelName, codeLabelName})

	// CodecPayloadSize 为单次编解码的数据大小分布。
	CodecPayloadSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: datametaNamespace,
		Subsystem: codecMetricSubsystem,
		Name:      "payload_size_bytes",
		Help:      "单次编解码的数据大小",
		Buckets:   sizeBuckets,
	}, []string{opLabelName})
)

// RegisterCodecMetrics 将编解码相关的指标注册到 Prometheus Registry 中。
// 只有第一次调用生效。
func RegisterCodecMetrics(registry prometheus.Registerer) {
	CodecMetricsRegisterOnce.Do(func() {
		registry.MustRegister(CodecOps)
		registry.MustRegister(CodecBytes)
		registry.MustRegister(CodecFailures)
		registry.MustRegister(CodecPayloadSize)
	})
}
