package logger

import "go.uber.org/zap"

type Field = zap.Field

var (
	String  = zap.String
	Strings = zap.Strings
	Float64 = zap.Float64
	Time    = zap.Time
	ErrorF  = zap.Error
)
