package util

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StringPointer(s string) *string {
	return &s
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

// Round rounds to the given number of decimal places
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// RoundPointer rounds the value if present
func RoundPointer(f *float64, places int) *float64 {
	if f == nil {
		return nil
	}
	return FloatPointer(Round(*f, places))
}

// FinitePointer returns nil for NaN and infinities
func FinitePointer(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
