package daraja

import (
	"errors"
	"time"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"

	stkPushPath      = "/mpesa/stkpush/v1/processrequest"
	stkQueryPath     = "/mpesa/stkpushquery/v1/query"
	oauthPath        = "/oauth/v1/generate?grant_type=client_credentials"
	transactionType  = "CustomerPayBillOnline"
	timestampLayout  = "20060102150405"
	queryPendingCode = "500.001.1001"
)

var (
	ErrAuth             = errors.New("daraja authentication failed")
	ErrInitiation       = errors.New("daraja push payment initiation failed")
	ErrQuery            = errors.New("daraja status query failed")
	ErrAmountOutOfRange = errors.New("amount outside the allowed gateway range")
	ErrMissingCert      = errors.New("production certificate not configured; refusing to fabricate a security credential")
)

// Config carries everything the client needs. It is injected at construction
// so tests can point the client at a fake gateway.
type Config struct {
	Environment    string // "sandbox" or "production"
	BaseURL        string // derived from Environment when empty
	ShortCode      string
	Passkey        string
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string

	// Production-only signing material for initiator-credentialed APIs.
	InitiatorName     string
	InitiatorPassword string
	CertPath          string

	MinAmount uint32
	MaxAmount uint32
	Timeout   time.Duration

	Phone MSISDNScheme
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            uint32 `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

type gatewayError struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}
