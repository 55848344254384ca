package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/coder/websocket"

	"burrow/server/domain"
)

// ゲームサーバーのイベントストリームを購読して標準出力へ流す観戦クライアント。
func main() {
	var (
		addrFlag = flag.String("addr", "ws://localhost:9090/events", "event stream url")
		rawFlag  = flag.Bool("raw", false, "print raw json instead of formatted lines")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, _, err := websocket.Dial(ctx, *addrFlag, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", *addrFlag, err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	log.Printf("watching %s", *addrFlag)
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Fatalf("read: %v", err)
		}
		if *rawFlag {
			fmt.Println(string(data))
			continue
		}

		var ev domain.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("malformed event: %v", err)
			continue
		}
		fmt.Println(formatEvent(ev))
	}
}

func formatEvent(ev domain.Event) string {
	switch ev.Kind {
	case domain.EventWallGenerated:
		return fmt.Sprintf("%s wall generated (session %s)", ev.At.Format("15:04:05.000"), ev.SessionID)
	case domain.EventMoleSpawned:
		return fmt.Sprintf("%s mole %d spawned as %s", ev.At.Format("15:04:05.000"), ev.MoleID, ev.Outcome)
	case domain.EventMoleHit:
		return fmt.Sprintf("%s mole %d hit (%s, feedback %.2f)", ev.At.Format("15:04:05.000"), ev.MoleID, ev.Outcome, ev.Feedback)
	case domain.EventMoleMissed:
		return fmt.Sprintf("%s mole %d missed", ev.At.Format("15:04:05.000"), ev.MoleID)
	case domain.EventMoleExpired:
		return fmt.Sprintf("%s mole %d expired", ev.At.Format("15:04:05.000"), ev.MoleID)
	case domain.EventPointerShot:
		return fmt.Sprintf("%s shot #%d %s", ev.At.Format("15:04:05.000"), ev.Seq, ev.Outcome)
	default:
		return fmt.Sprintf("%s %s", ev.At.Format("15:04:05.000"), ev.Kind)
	}
}
