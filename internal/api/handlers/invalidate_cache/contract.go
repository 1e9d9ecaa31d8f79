package invalidate_cache

type CacheInvalidator interface {
	Invalidate(keys ...string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
