package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode            = 0
	ServiceErrCode         = 10001
	ParamErrCode           = 10002
	DBErrCode              = 10003
	StoreUnavailableCode   = 10004
	SnapshotCorruptCode    = 10005
	AuthorizationErrCode   = 10006
	VerificationFailedCode = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success             = NewErrNo(SuccessCode, "Success")
	ServiceErr          = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr            = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	DBErr               = NewErrNo(DBErrCode, "Database operation failed")
	StoreUnavailableErr = NewErrNo(StoreUnavailableCode, "Local store engine could not be constructed")
	SnapshotCorruptErr  = NewErrNo(SnapshotCorruptCode, "Persisted snapshot could not be restored")
	AuthorizationErr    = NewErrNo(AuthorizationErrCode, "Authorization failed")
	VerificationErr     = NewErrNo(VerificationFailedCode, "Verification code mismatch")
)

// ConvertErr converts any error to an ErrNo, keeping the original message.
func ConvertErr(err error) ErrNo {
	errno := ErrNo{}
	if errors.As(err, &errno) {
		return errno
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
