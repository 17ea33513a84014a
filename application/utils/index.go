package utils

import (
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

func GetStringPointer(text string) *string {
	return &text
}

func GetUIntPointer(data uint) *uint {
	return &data
}

func GetUInt32Pointer(data uint32) *uint32 {
	return &data
}

func GetIntPointer(data int) *int {
	return &data
}

func GetTimePointer(data time.Time) *time.Time {
	return &data
}
