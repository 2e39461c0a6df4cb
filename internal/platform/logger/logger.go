package logger

import (
	"log"
	"os"
)

// Semua log aplikasi lewat sini supaya prefix dan tujuan output seragam.
const appTag = "[toko-api] "

var (
	infoLogger  = log.New(os.Stdout, appTag+"INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	warnLogger  = log.New(os.Stdout, appTag+"WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger = log.New(os.Stderr, appTag+"ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

func Info(msg string, v ...interface{}) {
	infoLogger.Printf(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	warnLogger.Printf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		errorLogger.Printf(msg+": %v", append(v, err)...)
		return
	}
	errorLogger.Printf(msg, v...)
}
