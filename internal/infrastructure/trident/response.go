package trident

import "github.com/DanielPopoola/trident-gateway/internal/domain"

const approvedMessage = "This transaction has been approved"

// normalize maps the gateway's response fields into a GatewayResponse.
func normalize(params map[string]string, test bool) *domain.GatewayResponse {
	resp := &domain.GatewayResponse{
		ErrorCode:     lookup(params, "error_code"),
		Authorization: lookup(params, "transaction_id"),
		Test:          test,
		CVVResult:     lookup(params, "cvv2_result"),
		AVSResult:     domain.AVSResult{Code: lookup(params, "avs_result")},
		Params:        params,
	}

	if resp.Success() {
		resp.Message = approvedMessage
	} else if text := lookup(params, "auth_response_text"); text != nil {
		resp.Message = *text
	}

	return resp
}

func lookup(params map[string]string, key string) *string {
	if v, ok := params[key]; ok {
		return &v
	}
	return nil
}
