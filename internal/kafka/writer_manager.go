package kafka

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cvss-scoring-service-golang/internal/config"
	"cvss-scoring-service-golang/internal/logging"

	"github.com/friendsofgo/errors"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafkago.Writer the service publishes through.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

var (
	writerPool sync.Map
	cfgOnce    sync.Once
	writerCfg  struct {
		brokers        []string
		autoCreate     bool
		initializedErr error
	}
)

// GetWriter returns a shared writer for the given topic. Writers are cached
// and must not be closed by callers.
func GetWriter(topic string) (Writer, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("topic is required")
	}
	if writer, ok := writerPool.Load(topic); ok {
		return writer.(Writer), nil
	}

	cfgOnce.Do(func() {
		cfg := config.LoadConfig()
		writerCfg.brokers = SplitBrokers(cfg.KafkaBroker)
		if len(writerCfg.brokers) == 0 {
			writerCfg.initializedErr = errors.New("kafka broker list is empty")
			return
		}
		writerCfg.autoCreate = cfg.AutoCreateTopics
	})
	if writerCfg.initializedErr != nil {
		return nil, writerCfg.initializedErr
	}

	if writerCfg.autoCreate {
		ensureTopicExists(writerCfg.brokers[0], topic, 1)
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(writerCfg.brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}

	actual, loaded := writerPool.LoadOrStore(topic, Writer(writer))
	if loaded {
		_ = writer.Close()
		return actual.(Writer), nil
	}
	return writer, nil
}

// RegisterWriter installs w as the shared writer for topic, replacing and
// closing any previous one.
func RegisterWriter(topic string, w Writer) {
	if prev, loaded := writerPool.Swap(topic, w); loaded {
		if pw, ok := prev.(Writer); ok && pw != w {
			_ = pw.Close()
		}
	}
}

// CloseWriters drains the shared writer pool; call during service shutdown.
func CloseWriters() {
	writerPool.Range(func(key, value interface{}) bool {
		if w, ok := value.(Writer); ok {
			_ = w.Close()
		}
		writerPool.Delete(key)
		return true
	})
}

// SplitBrokers parses a comma separated broker list.
func SplitBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func ensureTopicExists(broker, topic string, partitions int) {
	if broker == "" || topic == "" {
		return
	}
	log := logging.Component("kafka").With("topic", topic)

	conn, err := kafkago.Dial("tcp", broker)
	if err != nil {
		log.Warn("auto-create disabled, dial failed", "broker", broker, "err", err)
		return
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		log.Warn("controller lookup failed", "err", err)
		return
	}

	controllerAddr := fmt.Sprintf("%s:%d", controller.Host, controller.Port)
	controllerConn, err := kafkago.Dial("tcp", controllerAddr)
	if err != nil {
		log.Warn("controller dial failed", "err", err)
		return
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	})
	if err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			log.Warn("could not create topic", "err", err)
		}
	} else {
		log.Info("ensured topic")
	}

	time.Sleep(time.Second)
}
