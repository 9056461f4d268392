package utils

import "fmt"

/*
WrapError 在 err 外包装一层说明信息，保留原始错误链。
*/
func WrapError(err error, msg string) error {
	return fmt.Errorf("%s: %w", msg, err)
}

func WrapErrorf(err error, format string, args ...interface{}) error {
	return WrapError(err, fmt.Sprintf(format, args...))
}
