package infrastructure

import (
	"errors"
	"sync"
)

type SMTPMock struct {
	calledSend bool
	messages   []Message
	FailSend   bool
	mu         sync.Mutex
	Wg         sync.WaitGroup
}

type Message struct {
	Address string
	Subject string
	Body    string
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calledSend = true
	if s.FailSend {
		return errors.New("SMTP failure")
	}
	s.messages = append(s.messages, Message{Address: address, Subject: subject, Body: body})
	return nil
}

func (s *SMTPMock) From() string {
	return ""
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SMTPMock) LastMessage() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return Message{}
	}
	return s.messages[len(s.messages)-1]
}
