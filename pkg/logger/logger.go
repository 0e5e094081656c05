// Package logger предоставляет общий интерфейс логирования поверх zap.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(err error, format string, args ...interface{})
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger создаёт логгер поверх zap.
// mode — "production" или "development",
// filename — путь к файлу логов (ротация через lumberjack), пустая строка отключает запись в файл.
func NewZapLogger(mode, filename string) Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)

	if mode == "production" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if filename != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    100, // МБ
			MaxBackups: 3,
			MaxAge:     28, // дней
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)

	return &zapLogger{
		sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

// NewNopLogger возвращает логгер, отбрасывающий все записи. Для тестов.
func NewNopLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(err error, format string, args ...interface{}) {
	l.sugar.Errorf("%s: %v", fmt.Sprintf(format, args...), err)
}
