package chatmodel

import "errors"

var (
	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrEmptyConversation indicates Complete was called with no messages.
	ErrEmptyConversation = errors.New("conversation has no messages")

	// ErrNoReply indicates the provider returned no completion choices.
	ErrNoReply = errors.New("no reply returned by provider")

	// ErrUnknownProvider indicates an unrecognized provider name in configuration.
	ErrUnknownProvider = errors.New("unknown chat model provider")

	// ErrClientCreationFailed indicates a failure in creating the API client.
	ErrClientCreationFailed = errors.New("failed to create API client")
)
