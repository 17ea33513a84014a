package interfaces

import "net/http"

// ApplicationContext carries a parsed request body and request-scoped data
// from the transport layer into controllers without binding them to gin.
type ApplicationContext[T interface{}] struct {
	Ctx      interface{}
	Body     *T
	Header   http.Header
	Keys     map[string]any
	DeviceID string
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	value := ac.Header.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}
