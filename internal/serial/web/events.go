package web

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	// SerialData carries bytes written to the serial data register.
	SerialData Type = iota
	// ClientInfo is sent once on connection: the client's ID,
	// followed by the serial history.
	ClientInfo
	// ServerInfo carries the ID and average latency (ms, uint16
	// little endian) of every connected client.
	ServerInfo
	// ClientClosing carries the ID of a client that disconnected.
	ClientClosing
)

// Event is the first byte of a message sent by a client.
type Event = uint8

const (
	KeepAlive Event = 254
	Closing   Event = 255
)
