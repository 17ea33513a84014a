package daraja

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"safiri.io/application/constants"
	"safiri.io/infrastructure/logger"
	"safiri.io/infrastructure/network"
	payment_types "safiri.io/infrastructure/payments/types"
)

// DarajaClient talks to Safaricom's Daraja API. Construct it once with
// NewDarajaClient and pass it by reference; it holds no request state beyond
// the cached access token.
type DarajaClient struct {
	Config  Config
	Network *network.NetworkController
	tokens  *accessTokenSource
	clock   func() time.Time
}

func NewDarajaClient(config Config) (*DarajaClient, error) {
	if config.ShortCode == "" || config.Passkey == "" {
		return nil, errors.New("daraja short code and passkey are required")
	}
	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return nil, errors.New("daraja consumer credentials are required")
	}
	if config.CallbackURL == "" {
		return nil, errors.New("daraja callback url is required")
	}
	if config.BaseURL == "" {
		if config.Environment == "production" {
			config.BaseURL = productionBaseURL
		} else {
			config.BaseURL = sandboxBaseURL
		}
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Phone.CountryCode == "" {
		config.Phone = KenyanMSISDNScheme()
	}
	if config.MaxAmount == 0 {
		config.MaxAmount = 250_000
	}
	if config.MinAmount == 0 {
		config.MinAmount = 1
	}

	networkController := &network.NetworkController{
		BaseUrl: config.BaseURL,
		Client:  &http.Client{Timeout: config.Timeout},
	}
	return &DarajaClient{
		Config:  config,
		Network: networkController,
		tokens: &accessTokenSource{
			network:        networkController,
			consumerKey:    config.ConsumerKey,
			consumerSecret: config.ConsumerSecret,
		},
		clock: time.Now,
	}, nil
}

// InitiatePush fires an STK push prompt at the customer's phone. Validation
// happens before any network call; the returned checkout request id is the
// correlation key for the eventual callback or status query.
func (client *DarajaClient) InitiatePush(ctx context.Context, phone string, amount uint32, accountReference string, description string) (*payment_types.PushPaymentResponse, error) {
	normalizedPhone, err := client.Config.Phone.Normalize(phone)
	if err != nil {
		return nil, err
	}
	if amount < client.Config.MinAmount || amount > client.Config.MaxAmount {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrAmountOutOfRange, amount, client.Config.MinAmount, client.Config.MaxAmount)
	}
	if len(accountReference) == 0 || len(accountReference) > constants.MAX_ACCOUNT_REFERENCE_LENGTH {
		return nil, fmt.Errorf("%w: account reference must be 1-%d characters", ErrInitiation, constants.MAX_ACCOUNT_REFERENCE_LENGTH)
	}
	if len(description) == 0 || len(description) > constants.MAX_TRANSACTION_DESC_LENGTH {
		return nil, fmt.Errorf("%w: description must be 1-%d characters", ErrInitiation, constants.MAX_TRANSACTION_DESC_LENGTH)
	}

	token, err := client.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := client.stkPassword()
	response, statusCode, err := client.Network.Post(ctx, stkPushPath, &map[string]string{
		"Authorization": "Bearer " + token,
	}, stkPushRequest{
		BusinessShortCode: client.Config.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            amount,
		PartyA:            normalizedPhone,
		PartyB:            client.Config.ShortCode,
		PhoneNumber:       normalizedPhone,
		CallBackURL:       client.Config.CallbackURL,
		AccountReference:  accountReference,
		TransactionDesc:   description,
	})
	if err != nil {
		logger.Error("an error occured while calling the stk push endpoint", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, fmt.Errorf("%w: %v", ErrInitiation, err)
	}
	if *statusCode != http.StatusOK {
		logger.Error("stk push request rejected", logger.LoggerOptions{
			Key:  "statusCode",
			Data: *statusCode,
		}, logger.LoggerOptions{
			Key:  "body",
			Data: string(*response),
		})
		return nil, fmt.Errorf("%w: gateway returned status %d", ErrInitiation, *statusCode)
	}

	var parsed stkPushResponse
	if err := json.Unmarshal(*response, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitiation, err)
	}
	if parsed.ResponseCode != "0" {
		return nil, fmt.Errorf("%w: gateway response code %s (%s)", ErrInitiation, parsed.ResponseCode, parsed.ResponseDescription)
	}
	if parsed.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: gateway acknowledged without a checkout request id", ErrInitiation)
	}

	return &payment_types.PushPaymentResponse{
		CheckoutRequestID: parsed.CheckoutRequestID,
		MerchantRequestID: parsed.MerchantRequestID,
		CustomerMessage:   parsed.CustomerMessage,
		NormalizedPhone:   normalizedPhone,
	}, nil
}

// QueryPushStatus actively polls for the outcome of an earlier push. A
// still-processing response is reported as Pending, not as an error.
func (client *DarajaClient) QueryPushStatus(ctx context.Context, checkoutRequestID string) (*payment_types.PushStatusResponse, error) {
	token, err := client.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := client.stkPassword()
	response, statusCode, err := client.Network.Post(ctx, stkQueryPath, &map[string]string{
		"Authorization": "Bearer " + token,
	}, stkQueryRequest{
		BusinessShortCode: client.Config.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	})
	if err != nil {
		logger.Error("an error occured while calling the stk query endpoint", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	if *statusCode != http.StatusOK {
		var gwErr gatewayError
		if err := json.Unmarshal(*response, &gwErr); err == nil && gwErr.ErrorCode == queryPendingCode {
			return &payment_types.PushStatusResponse{Pending: true}, nil
		}
		logger.Error("stk query request rejected", logger.LoggerOptions{
			Key:  "statusCode",
			Data: *statusCode,
		}, logger.LoggerOptions{
			Key:  "body",
			Data: string(*response),
		})
		return nil, fmt.Errorf("%w: gateway returned status %d", ErrQuery, *statusCode)
	}

	var parsed stkQueryResponse
	if err := json.Unmarshal(*response, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	resultCode, err := strconv.Atoi(parsed.ResultCode)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable result code %q", ErrQuery, parsed.ResultCode)
	}

	return &payment_types.PushStatusResponse{
		ResultCode:        resultCode,
		ResultDescription: parsed.ResultDesc,
	}, nil
}

// stkPassword derives the request password for the current instant. The
// returned timestamp is the exact value folded into the digest and must be
// submitted alongside it.
func (client *DarajaClient) stkPassword() (string, string) {
	timestamp := client.clock().Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(client.Config.ShortCode + client.Config.Passkey + timestamp))
	return password, timestamp
}
