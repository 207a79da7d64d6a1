package kafka

import "time"

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

type Header struct {
	Key   string
	Value []byte
}

func StringHeader(key, value string) Header {
	return Header{Key: key, Value: []byte(value)}
}

// Message is a transport-neutral view of a consumed Kafka record.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// Header returns the value of header key, or "" if the record does not carry it.
func (m Message) Header(key string) string {
	return string(m.Headers[key])
}
