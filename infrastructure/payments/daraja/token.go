package daraja

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"safiri.io/infrastructure/logger"
	"safiri.io/infrastructure/network"
)

// Refresh this long before the advertised expiry so a token never dies
// mid-request.
const tokenRefreshSkew = 30 * time.Second

// accessTokenSource caches the gateway bearer token until shortly before its
// advertised expiry. Concurrent callers share one in-flight refresh.
type accessTokenSource struct {
	network        *network.NetworkController
	consumerKey    string
	consumerSecret string

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (source *accessTokenSource) AccessToken(ctx context.Context) (string, error) {
	source.mu.Lock()
	if source.token != "" && time.Now().Before(source.expiresAt.Add(-tokenRefreshSkew)) {
		token := source.token
		source.mu.Unlock()
		return token, nil
	}
	source.mu.Unlock()

	token, err, _ := source.group.Do("access-token", func() (interface{}, error) {
		return source.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (source *accessTokenSource) refresh(ctx context.Context) (string, error) {
	basicAuth := base64.StdEncoding.EncodeToString([]byte(source.consumerKey + ":" + source.consumerSecret))
	response, statusCode, err := source.network.Get(ctx, oauthPath, &map[string]string{
		"Authorization": "Basic " + basicAuth,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if *statusCode != http.StatusOK {
		logger.Error("daraja credential endpoint rejected the request", logger.LoggerOptions{
			Key:  "statusCode",
			Data: *statusCode,
		}, logger.LoggerOptions{
			Key:  "body",
			Data: string(*response),
		})
		return "", fmt.Errorf("%w: credential endpoint returned status %d", ErrAuth, *statusCode)
	}

	var parsed oauthResponse
	if err := json.Unmarshal(*response, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrAuth)
	}

	// the gateway reports expiry as a string number of seconds
	expiresIn, err := strconv.Atoi(parsed.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3599
	}

	source.mu.Lock()
	source.token = parsed.AccessToken
	source.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	source.mu.Unlock()

	return parsed.AccessToken, nil
}
