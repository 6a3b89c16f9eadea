package webserver

import "time"

type Config struct {
	Version           string
	Secret            []byte
	MinPasswordLength int
	BaseURL           string
	SessionTimeout    time.Duration
	InviteValidity    time.Duration
}
