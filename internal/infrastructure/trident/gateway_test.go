package trident_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"
	"github.com/DanielPopoola/trident-gateway/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var testConfig = trident.Config{Login: "test-login", Password: "test-pass"}

type commitRecord struct {
	action  domain.GatewayAction
	outcome string
}

type recordingObserver struct {
	mu      sync.Mutex
	commits []commitRecord
}

func (o *recordingObserver) ObserveCommit(action domain.GatewayAction, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.commits = append(o.commits, commitRecord{action: action, outcome: outcome})
}

func newGateway(t *testing.T, cfg trident.Config, opts ...trident.Option) (*trident.Gateway, *mocks.MockTransport) {
	t.Helper()
	transport := mocks.NewMockTransport(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return trident.NewGateway(transport, cfg, append([]trident.Option{trident.WithLogger(logger)}, opts...)...), transport
}

func testCard() domain.Card {
	return domain.Card{Info: domain.CardInfo{
		Number:           "4242424242424242",
		Month:            "12",
		Year:             "2017",
		VerificationCode: "123",
	}}
}

func headersMatch(h http.Header) bool {
	return h.Get("Content-Type") == "application/x-www-form-urlencoded" &&
		h.Get("Accept") == "text/html, image/gif, image/jpeg, *; q=.2, */*; q=.2"
}

func TestGateway_Purchase(t *testing.T) {
	gw, transport := newGateway(t, testConfig)

	expectedBody := "card_exp_date=122017&card_number=4242424242424242&client_reference_number=cust1" +
		"&cvv2=123&profile_id=test-login&profile_key=test-pass&transaction_type=D&trasaction_amout=500"

	transport.EXPECT().
		Post(mock.Anything, trident.TestURL, expectedBody, mock.MatchedBy(headersMatch)).
		Return(&trident.RawResponse{
			StatusCode: http.StatusOK,
			Body: map[string]string{
				"transaction_id": "T1",
				"cvv2_result":    "M",
				"avs_result":     "Y",
			},
		}, nil).
		Once()

	resp, err := gw.Purchase(context.Background(), domain.MustMoney("500", ""), testCard(), customerOpts())

	require.NoError(t, err)
	assert.Nil(t, resp.ErrorCode)
	require.NotNil(t, resp.Authorization)
	assert.Equal(t, "T1", *resp.Authorization)
	require.NotNil(t, resp.CVVResult)
	assert.Equal(t, "M", *resp.CVVResult)
	require.NotNil(t, resp.AVSResult.Code)
	assert.Equal(t, "Y", *resp.AVSResult.Code)
	assert.True(t, resp.Test)
	assert.True(t, resp.Success())
	assert.Equal(t, "This transaction has been approved", resp.Message)
}

func TestGateway_Void(t *testing.T) {
	gw, transport := newGateway(t, testConfig)

	transport.EXPECT().
		Post(mock.Anything, trident.TestURL,
			"client_reference_number=cust1&profile_id=test-login&profile_key=test-pass&transaction_id=T1&transaction_type=V",
			mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{"error_code": "000", "transaction_id": "T1"}}, nil).
		Once()

	resp, err := gw.Void(context.Background(), "T1", customerOpts())

	require.NoError(t, err)
	assert.True(t, resp.Success())
}

func TestGateway_TransactionTypes(t *testing.T) {
	ctx := context.Background()
	amount := domain.MustMoney("12.50", "USD")
	token := domain.Token{ID: "card-1"}

	calls := []struct {
		action domain.GatewayAction
		call   func(*trident.Gateway) (*domain.GatewayResponse, error)
	}{
		{domain.ActionPurchase, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Purchase(ctx, amount, token, customerOpts())
		}},
		{domain.ActionAuthorize, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Authorize(ctx, amount, token, customerOpts())
		}},
		{domain.ActionCapture, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Capture(ctx, "T1", amount, customerOpts())
		}},
		{domain.ActionVoid, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Void(ctx, "T1", customerOpts())
		}},
		{domain.ActionRefund, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Refund(ctx, amount, "T1", customerOpts())
		}},
		{domain.ActionStore, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Store(ctx, testCard(), customerOpts())
		}},
		{domain.ActionUnstore, func(g *trident.Gateway) (*domain.GatewayResponse, error) {
			return g.Unstore(ctx, "card-1", customerOpts())
		}},
	}

	for _, tc := range calls {
		t.Run(tc.action.String(), func(t *testing.T) {
			gw, transport := newGateway(t, testConfig)

			var sent string
			transport.EXPECT().
				Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Run(func(_ context.Context, _ string, body string, _ http.Header) { sent = body }).
				Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{}}, nil).
				Once()

			_, err := tc.call(gw)
			require.NoError(t, err)

			assert.Contains(t, sent, "transaction_type="+tc.action.TransactionType())
			assert.Contains(t, sent, "profile_id=test-login")
			assert.Contains(t, sent, "profile_key=test-pass")

			switch tc.action {
			case domain.ActionVoid:
				assert.NotContains(t, sent, "trasaction_amout")
			case domain.ActionStore, domain.ActionUnstore:
				assert.NotContains(t, sent, "trasaction_amout")
			default:
				assert.Contains(t, sent, "trasaction_amout=12.50")
			}
		})
	}
}

func TestGateway_TransportFailure(t *testing.T) {
	failures := []error{
		errors.New("dial tcp: connection refused"),
		&trident.TransportError{StatusCode: 500, Message: "oops"},
		context.DeadlineExceeded,
	}

	for _, cause := range failures {
		t.Run(cause.Error(), func(t *testing.T) {
			observer := &recordingObserver{}
			gw, transport := newGateway(t, testConfig, trident.WithObserver(observer))

			transport.EXPECT().
				Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, cause).
				Once()

			resp, err := gw.Refund(context.Background(), domain.MustMoney("1", ""), "T1", customerOpts())

			assert.Nil(t, resp)
			assert.EqualError(t, err, "There was an issue with your request")
			assert.ErrorIs(t, err, domain.ErrTransportFailure)

			var failure *domain.TransportFailure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, cause, failure.Err)

			require.Len(t, observer.commits, 1)
			assert.Equal(t, trident.OutcomeTransportFailure, observer.commits[0].outcome)
		})
	}
}

func TestGateway_EmptyResponseIsTransportFailure(t *testing.T) {
	observer := &recordingObserver{}
	gw, transport := newGateway(t, testConfig, trident.WithObserver(observer))

	transport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	resp, err := gw.Void(context.Background(), "T1", customerOpts())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrTransportFailure)
	require.Len(t, observer.commits, 1)
	assert.Equal(t, trident.OutcomeTransportFailure, observer.commits[0].outcome)
}

func TestGateway_ZeroValueInputs(t *testing.T) {
	t.Run("empty token never reaches transport", func(t *testing.T) {
		gw, _ := newGateway(t, testConfig)

		resp, err := gw.Purchase(context.Background(), domain.Money{}, domain.Token{}, customerOpts())

		assert.Nil(t, resp)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidPaymentSource))
	})

	t.Run("zero money sends no amount", func(t *testing.T) {
		gw, transport := newGateway(t, testConfig)

		transport.EXPECT().
			Post(mock.Anything, trident.TestURL,
				"card_id=tok-1&client_reference_number=cust1&profile_id=test-login&profile_key=test-pass&transaction_type=D",
				mock.Anything).
			Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{}}, nil).
			Once()

		_, err := gw.Purchase(context.Background(), domain.Money{}, domain.Token{ID: "tok-1"}, customerOpts())

		require.NoError(t, err)
	})
}

func TestGateway_MissingCustomerNeverReachesTransport(t *testing.T) {
	gw, _ := newGateway(t, testConfig)

	resp, err := gw.Purchase(context.Background(), domain.MustMoney("5", ""), testCard(), domain.Options{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMissingOption)
}

func TestGateway_ProductionUsesLiveURL(t *testing.T) {
	gw, transport := newGateway(t, trident.Config{Login: "l", Password: "p", Production: true})

	transport.EXPECT().
		Post(mock.Anything, trident.LiveURL, mock.Anything, mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{"transaction_id": "T9"}}, nil).
		Once()

	resp, err := gw.Authorize(context.Background(), domain.MustMoney("5", ""), domain.Token{ID: "tok"}, customerOpts())

	require.NoError(t, err)
	assert.False(t, resp.Test)
}

func TestGateway_EndpointOverride(t *testing.T) {
	gw, transport := newGateway(t, trident.Config{Login: "l", Password: "p", TestURL: "http://localhost:9999/trident"})

	transport.EXPECT().
		Post(mock.Anything, "http://localhost:9999/trident", mock.Anything, mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{}}, nil).
		Once()

	_, err := gw.Void(context.Background(), "T1", customerOpts())

	require.NoError(t, err)
}

func TestGateway_CredentialOverride(t *testing.T) {
	gw, transport := newGateway(t, testConfig)

	opts := customerOpts()
	opts.Credentials = &domain.Credentials{Login: "other-profile", Password: "other-key"}

	transport.EXPECT().
		Post(mock.Anything, mock.Anything,
			"client_reference_number=cust1&profile_id=other-profile&profile_key=other-key&transaction_id=T1&transaction_type=V",
			mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{}}, nil).
		Once()

	_, err := gw.Void(context.Background(), "T1", opts)

	require.NoError(t, err)
}

func TestGateway_Declined(t *testing.T) {
	observer := &recordingObserver{}
	gw, transport := newGateway(t, testConfig, trident.WithObserver(observer))

	transport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{
			"error_code":         "005",
			"auth_response_text": "Do Not Honor",
			"transaction_id":     "T2",
		}}, nil).
		Once()

	resp, err := gw.Purchase(context.Background(), domain.MustMoney("5", ""), testCard(), customerOpts())

	require.NoError(t, err)
	assert.False(t, resp.Success())
	assert.Equal(t, "005", *resp.ErrorCode)
	assert.Equal(t, "Do Not Honor", resp.Message)
	assert.Equal(t, "T2", resp.Params["transaction_id"])
	assert.Equal(t, []commitRecord{{domain.ActionPurchase, trident.OutcomeDeclined}}, observer.commits)
}

func TestGateway_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	gw, transport := newGateway(t, testConfig, trident.WithTracerProvider(tp))

	transport.EXPECT().
		Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&trident.RawResponse{StatusCode: http.StatusOK, Body: map[string]string{}}, nil).
		Once()

	_, err := gw.Unstore(context.Background(), "card-1", customerOpts())
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "trident.unstore", spans[0].Name())
}
