package util

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogRotation | LogSimulation

type LogLevel int

const (
    LogLevelError LogLevel = 1 << iota
    LogLevelWarning
    LogLevelDebug
    LogLevelInfo
)

type LogCategory int

const (
    LogRotation LogCategory = 1 << iota
    LogTrigger
    LogOrbit
    LogFaceTracking
    LogSimulation
    LogConfig
)

var sugar = newSugaredLogger()

func newSugaredLogger() *zap.SugaredLogger {
    cfg := zap.NewDevelopmentConfig()
    cfg.DisableCaller = true
    cfg.DisableStacktrace = true
    cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
    logger, err := cfg.Build()
    if err != nil {
        panic(err)
    }
    return logger.Sugar()
}

func log(cat LogCategory, lvl LogLevel, txt string) {
    if lvl > GLOBAL_LOG_LEVEL {
        return
    }
    if GLOBAL_LOG_CATEGORIES&cat == 0 {
        return
    }
    switch lvl {
    case LogLevelError:
        sugar.Error(txt)
    case LogLevelWarning:
        sugar.Warn(txt)
    case LogLevelDebug:
        sugar.Debug(txt)
    default:
        sugar.Info(txt)
    }
}

func LogRotationInfo(txt string) {
    log(LogRotation, LogLevelInfo, txt)
}

func LogRotationDebug(txt string) {
    log(LogRotation, LogLevelDebug, txt)
}

func LogRotationError(txt string) {
    log(LogRotation, LogLevelError, txt)
}

func LogTriggerDebug(txt string) {
    log(LogTrigger, LogLevelDebug, txt)
}

func LogOrbitDebug(txt string) {
    log(LogOrbit, LogLevelDebug, txt)
}

func LogOrbitWarning(txt string) {
    log(LogOrbit, LogLevelWarning, txt)
}

func LogFaceDebug(txt string) {
    log(LogFaceTracking, LogLevelDebug, txt)
}

func LogSimInfo(txt string) {
    log(LogSimulation, LogLevelInfo, txt)
}

func LogSimError(txt string) {
    log(LogSimulation, LogLevelError, txt)
}

func LogConfigError(txt string) {
    log(LogConfig, LogLevelError, txt)
}
