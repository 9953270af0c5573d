package application

import (
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lk2023060901/datameta-go/pkg/hadoop/codec"
	zlog "github.com/lk2023060901/datameta-go/pkg/log"
	"github.com/lk2023060901/datameta-go/pkg/metrics"
	"github.com/lk2023060901/datameta-go/pkg/util/merr"
	zviper "github.com/lk2023060901/datameta-go/pkg/util/viper"
)

const (
	defaultConfigPath = "./config.yaml"
	configPathEnv     = "DATAMETA_CONFIG_FILE_PATH"
)

// Application 汇总使用编解码器的进程共用的依赖：配置、日志、指标与 Codec。
type Application struct {
	cfg     *zviper.Config
	codec   *codec.Codec
	loggers map[string]*zlog.MLogger
}

// New 创建一个 Application，Init 之前 Codec 使用默认参数。
func New() *Application {
	return &Application{codec: codec.New()}
}

// Init 加载配置文件并初始化日志与 Codec。
// 配置文件路径优先级：参数 path > 环境变量 DATAMETA_CONFIG_FILE_PATH > ./config.yaml。
func (a *Application) Init(path string) error {
	path = resolveConfigPath(path)

	cfg := zviper.New()
	if err := cfg.LoadFile(path); err != nil {
		return merr.WrapErrIoFailed(path, err)
	}
	a.cfg = cfg

	if err := a.initLogging(); err != nil {
		return err
	}

	codecCfg, err := codec.LoadConfig(path)
	if err != nil {
		return err
	}
	c, err := codec.NewFromConfig(codecCfg)
	if err != nil {
		return err
	}
	a.codec = c

	zlog.Info("datameta application initialized",
		zlog.FieldComponent("application"),
		zlog.FieldKind(c.Options().DateTimeForm.String()))
	return nil
}

// RegisterMetrics 将编解码指标注册到 r。
func (a *Application) RegisterMetrics(r prometheus.Registerer) {
	metrics.Register(r)
}

// Config 返回已加载的配置，Init 之前为 nil。
func (a *Application) Config() *zviper.Config {
	return a.cfg
}

// Codec 返回按配置创建的 Codec。
func (a *Application) Codec() *codec.Codec {
	return a.codec
}

// Logger 返回配置中定义的具名 Logger，名字未知时回退到全局 Logger。
func (a *Application) Logger(name string) *zlog.MLogger {
	if lg, ok := a.loggers[name]; ok && lg != nil {
		return lg
	}
	return &zlog.MLogger{Logger: zlog.L()}
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv(configPathEnv)); envPath != "" {
		return envPath
	}
	return defaultConfigPath
}

func (a *Application) initLogging() error {
	if err := a.initGlobalLoggerFromEnv(); err != nil {
		return err
	}
	return a.initModuleLoggersFromConfig()
}

// initGlobalLoggerFromEnv 根据 DATAMETA_LOG_* 环境变量配置全局 Logger。
// 未设置 DATAMETA_LOG_ENABLE 时保留当前的全局 Logger。
//
//   - DATAMETA_LOG_ENABLE：为 "1"/"true" 时启用。
//   - DATAMETA_LOG_LEVEL：日志级别，默认 info。
//   - DATAMETA_LOG_STDOUT：是否输出到标准输出。
//   - DATAMETA_LOG_FILE_DIR / DATAMETA_LOG_FILE：日志目录与文件名。
//   - DATAMETA_LOG_FORMAT：json 或 console。
func (a *Application) initGlobalLoggerFromEnv() error {
	if !getenvBool("DATAMETA_LOG_ENABLE", false) {
		return nil
	}

	cfg := &zlog.Config{
		Level:               getenvDefault("DATAMETA_LOG_LEVEL", "info"),
		Format:              getenvDefault("DATAMETA_LOG_FORMAT", "console"),
		Stdout:              getenvBool("DATAMETA_LOG_STDOUT", false),
		DisableErrorVerbose: true,
		File: zlog.FileLogConfig{
			RootPath: getenvDefault("DATAMETA_LOG_FILE_DIR", ""),
			Filename: getenvDefault("DATAMETA_LOG_FILE", ""),
		},
	}
	logger, props, err := zlog.InitLogger(cfg)
	if err != nil {
		return merr.WrapErrParameterInvalidMsg("init global logger from env: %s", err.Error())
	}
	zlog.ReplaceGlobals(logger, props)
	return nil
}

// initModuleLoggersFromConfig 根据 logging 节点创建具名 Logger，例如：
//
//	logging:
//	  codec:
//	    level: debug
//	    stdout: true
//	    file:
//	      rootpath: ./logs
//	      filename: codec.log
func (a *Application) initModuleLoggersFromConfig() error {
	raw := make(map[string]zlog.Config)
	if err := a.cfg.UnmarshalKey("logging", &raw); err != nil {
		return merr.WrapErrParameterInvalidMsg("unmarshal logging config: %s", err.Error())
	}
	if len(raw) == 0 {
		return nil
	}

	a.loggers = make(map[string]*zlog.MLogger, len(raw))
	for name, lc := range raw {
		cfgCopy := lc
		logger, _, err := zlog.InitLogger(&cfgCopy)
		if err != nil {
			return merr.WrapErrParameterInvalidMsg("init module logger %q: %s", name, err.Error())
		}
		a.loggers[name] = &zlog.MLogger{Logger: logger.With(zlog.FieldModule(name))}
	}
	return nil
}

func getenvDefault(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func getenvBool(key string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
