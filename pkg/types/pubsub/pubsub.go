package pubsub

// Publisher pushes serialized snapshots and events toward the panel.
type Publisher interface {
	Publish(data []byte) error
}

type Subscriber interface {
	Subscribe() error
}

type PubSub interface {
	Publisher
	Subscriber
}
