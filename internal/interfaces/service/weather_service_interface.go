// Package service
package service

type WeatherServiceInterface interface {
	GetMetar(req *RequestGetMetar) *ApiResponse[ResponseGetMetar]
}

type RequestGetMetar struct {
	JwtHeader
	Station string `param:"station"`
}

type ResponseGetMetar struct {
	Station  string `json:"station"`
	Raw      string `json:"raw"`
	Observed string `json:"observed"`
	Mock     bool   `json:"mock"`
}
