package usecasecontract

// IAppLogger is the logging interface used across usecases so that the
// logging backend can be swapped in tests.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}
