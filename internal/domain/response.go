package domain

// ApprovedCode is the Trident error_code for an approved transaction.
const ApprovedCode = "000"

// AVSResult is the address verification outcome.
type AVSResult struct {
	Code *string
}

// GatewayResponse is the normalized outcome of one gateway call.
type GatewayResponse struct {
	ErrorCode     *string
	Authorization *string
	Test          bool
	CVVResult     *string
	AVSResult     AVSResult
	Message       string
	Params        map[string]string
}

// Success reports whether the gateway accepted the request. A missing error code counts as accepted.
func (r *GatewayResponse) Success() bool {
	return r.ErrorCode == nil || *r.ErrorCode == ApprovedCode
}
