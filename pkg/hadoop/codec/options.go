package codec

import (
	"math"
	"strings"

	"github.com/lk2023060901/datameta-go/pkg/util/merr"
	"github.com/lk2023060901/datameta-go/pkg/util/viper"
)

// DateTimeForm 决定日期集合中元素使用的线格式。
type DateTimeForm int32

const (
	// DateTimeLegacy 为 VInt(ZoneUTC) + VLong(毫秒)，与历史数据兼容。
	DateTimeLegacy DateTimeForm = iota
	// DateTimeUTC 为 VLong(毫秒)。
	DateTimeUTC
)

var dateTimeFormName = map[DateTimeForm]string{
	DateTimeLegacy: "legacy",
	DateTimeUTC:    "utc",
}

func (f DateTimeForm) String() string {
	if name, ok := dateTimeFormName[f]; ok {
		return name
	}
	return "unknown"
}

// ParseDateTimeForm 解析 "legacy" 或 "utc"，空字符串视为 legacy。
func ParseDateTimeForm(s string) (DateTimeForm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return DateTimeLegacy, nil
	case "utc":
		return DateTimeUTC, nil
	default:
		return DateTimeLegacy, merr.WrapErrParameterInvalid("legacy|utc", s, "date_time_form")
	}
}

// DefaultMaxCollectionLen 为默认允许的最大集合元素个数，即 VInt 能表示的最大值。
const DefaultMaxCollectionLen = math.MaxInt32

// Options 为集合编解码的可调参数。
type Options struct {
	// MaxCollectionLen 为读取时允许的最大元素个数，超过即视为长度前缀损坏。
	MaxCollectionLen int
	// CanonicalSetOrder 为 true 时原始类型集合按升序写出，相等集合得到相同字节。
	CanonicalSetOrder bool
	// DateTimeForm 为日期集合元素使用的格式。
	DateTimeForm DateTimeForm
}

type Option func(*Options)

// DefaultOptions 返回默认参数。
func DefaultOptions() Options {
	return Options{
		MaxCollectionLen: DefaultMaxCollectionLen,
		DateTimeForm:     DateTimeLegacy,
	}
}

func WithMaxCollectionLen(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCollectionLen = n
		}
	}
}

func WithCanonicalSetOrder(enable bool) Option {
	return func(o *Options) {
		o.CanonicalSetOrder = enable
	}
}

func WithDateTimeForm(form DateTimeForm) Option {
	return func(o *Options) {
		o.DateTimeForm = form
	}
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Config 为编解码器的文件配置，位于配置文件的 codec 节点下。
//
//	codec:
//	  max_collection_len: 65536
//	  canonical_set_order: true
//	  date_time_form: utc
type Config struct {
	MaxCollectionLen  int    `mapstructure:"max_collection_len" json:"max_collection_len"`
	CanonicalSetOrder bool   `mapstructure:"canonical_set_order" json:"canonical_set_order"`
	DateTimeForm      string `mapstructure:"date_time_form" json:"date_time_form"`
}

const (
	configKey = "codec"
	envPrefix = "DATAMETA"
)

// LoadConfig 从 YAML/JSON 文件中读取 codec 节点。
// 环境变量 DATAMETA_CODEC_<KEY> 优先于文件中的值，例如 DATAMETA_CODEC_DATE_TIME_FORM=utc。
func LoadConfig(path string) (Config, error) {
	v := viper.NewWithEnv(envPrefix)
	v.SetDefault(configKey+".max_collection_len", 0)
	v.SetDefault(configKey+".canonical_set_order", false)
	v.SetDefault(configKey+".date_time_form", DateTimeLegacy.String())
	if err := v.LoadFile(path); err != nil {
		return Config{}, merr.WrapErrIoFailed(path, err)
	}

	var root struct {
		Codec Config `mapstructure:"codec"`
	}
	if err := v.Unmarshal(&root); err != nil {
		return Config{}, merr.WrapErrParameterInvalidMsg("unmarshal %s config: %s", configKey, err.Error())
	}
	return root.Codec, nil
}

// Options 将配置转换为可选参数列表。
func (c Config) Options() ([]Option, error) {
	form, err := ParseDateTimeForm(c.DateTimeForm)
	if err != nil {
		return nil, err
	}
	if c.MaxCollectionLen < 0 {
		return nil, merr.WrapErrParameterInvalidMsg("max_collection_len must be non-negative, got %d", c.MaxCollectionLen)
	}
	return []Option{
		WithMaxCollectionLen(c.MaxCollectionLen),
		WithCanonicalSetOrder(c.CanonicalSetOrder),
		WithDateTimeForm(form),
	}, nil
}

// NewFromConfig 根据配置创建 Codec。
func NewFromConfig(c Config) (*Codec, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...), nil
}
