package room

// Broadcaster delivers a message to every connection of a room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, any) {}
