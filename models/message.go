// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Connection records that two users have exchanged at least one message.
// It is stored once per unordered pair of users.
type Connection struct {
	ID      int64 `json:"id"`
	UserID1 int64 `json:"id_user1"`
	UserID2 int64 `json:"id_user2"`
}

// Counterpart returns the id of the other participant of the connection.
func (c Connection) Counterpart(userID int64) int64 {
	if c.UserID1 == userID {
		return c.UserID2
	}
	return c.UserID1
}

// ConnectionEntry is a counterpart of a user's connection with its resolved name.
type ConnectionEntry struct {
	UserID int64  `json:"id_user"`
	Name   string `json:"nome"`
}

// UnknownUserName labels a counterpart whose user row no longer exists.
const UnknownUserName = "Unknown"

// Message is a direct message between the two participants of a connection.
// UserID1 and UserID2 always follow the ordering of the connection record;
// SenderID keeps who actually wrote it.
type Message struct {
	ID       int64  `json:"id"`
	UserID1  int64  `json:"id_user1"`
	UserID2  int64  `json:"id_user2"`
	SenderID int64  `json:"id_remetente"`
	Body     string `json:"mensagem"`
}

// SendMessageResult is the outcome of sending a message.
// NewConnection reports whether the connection was created by this send.
type SendMessageResult struct {
	Message       Message
	NewConnection bool
}
