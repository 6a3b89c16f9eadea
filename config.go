package main

import "time"

type Config struct {
	// Port defines the port number in which the webserver listens for requests
	Port string `env:"PORT" env-default:"3000"`
	// HomeDir is the directory where the database and the search index are stored
	HomeDir string `env:"HOMEDIR"`
	// BaseURL is the address users reach the application at, used to compose links in emails
	BaseURL string `env:"BASEURL" env-default:"localhost:3000"`
	// JwtSecret stores the secret used to sign session tokens
	JwtSecret []byte `env:"SECRET"`
	// MinPasswordLength is the minimum length accepted for user passwords
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	// SessionTimeout specifies the maximum time a user session may last, in hours
	SessionTimeout float64 `env:"SESSION_TIMEOUT" env-default:"24"`
	// InviteValidity specifies the time a collaboration invite may be claimed for, in hours
	InviteValidity float64 `env:"INVITE_VALIDITY" env-default:"168"`
	// SmtpServer points to the address of the email sending server
	SmtpServer string `env:"SMTP_SERVER"`
	// SmtpPort defines the port in which the SMTP server listens for requests
	SmtpPort int `env:"SMTP_PORT" env-default:"587"`
	// SmtpUser holds the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER"`
	// SmtpPassword holds the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD"`
}

func (c Config) SessionTimeoutDuration() time.Duration {
	return time.Duration(c.SessionTimeout * float64(time.Hour))
}

func (c Config) InviteValidityDuration() time.Duration {
	return time.Duration(c.InviteValidity * float64(time.Hour))
}
