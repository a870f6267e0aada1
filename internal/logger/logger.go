package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log  *logrus.Logger
	once sync.Once
)

type Fields = logrus.Fields

// New devuelve el logger del proceso. Escribe a stderr y, salvo en entorno
// de test, también a un archivo rotado bajo storage/logs.
func New() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetLevel(logrus.InfoLevel)
		if os.Getenv("APP_ENV") == "dev" {
			log.SetLevel(logrus.DebugLevel)
		}

		log.SetFormatter(&formatter.Formatter{
			TimestampFormat: "02 Jan 06 - 15:04",
			HideKeys:        false,
			CallerFirst:     true,
			CustomCallerFormatter: func(f *runtime.Frame) string {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
			},
		})

		writers := []io.Writer{os.Stderr}
		if os.Getenv("APP_ENV") != "test" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   fmt.Sprintf("./storage/logs/app-%s.log", time.Now().Format("2006-01-02")),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    100,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}

		log.SetOutput(io.MultiWriter(writers...))
		log.SetReportCaller(true)
	})

	return log
}

func Info(fields Fields, msg string) {
	New().WithFields(fields).Info(msg)
}

func Warn(fields Fields, msg string) {
	New().WithFields(fields).Warn(msg)
}

func Error(fields Fields, msg string) {
	New().WithFields(fields).Error(msg)
}
