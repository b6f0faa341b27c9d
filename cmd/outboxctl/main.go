// cmd/outboxctl/main.go
// outboxctl は送信キューの中身を覗くための小さな運用ツールです。
//
//	outboxctl            送信待ちコマンドの一覧を表示する
//	outboxctl -drop      送信待ちコマンドをすべて捨てる
//	outboxctl -db PATH   設定ファイルではなく指定したDBを開く
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"vocab_learn_client/internal/config"
	"vocab_learn_client/internal/outbox"
)

func main() {
	drop := flag.Bool("drop", false, "送信待ちのコマンドをすべて削除する")
	path := flag.String("db", "", "送信キューDBのパス (未指定なら設定ファイルの値)")
	flag.Parse()

	if *path == "" {
		if err := config.LoadConfig("./configs"); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		*path = config.Cfg.Outbox.Path
	}

	// SQLログは要らないので警告以上だけ流す
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	db, err := outbox.NewDB(*path, logger)
	if err != nil {
		log.Fatalf("Failed to open outbox database %q: %v", *path, err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	ob := outbox.NewGormOutbox(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending, err := ob.Pending(ctx, 0)
	if err != nil {
		log.Fatalf("Failed to read pending commands: %v", err)
	}
	if len(pending) == 0 {
		fmt.Println("Outbox is empty.")
		return
	}

	fmt.Printf("%d pending progress command(s) in %s:\n", len(pending), *path)
	for _, cmd := range pending {
		line := fmt.Sprintf("  %s  word=%s  status=%-11s  attempts=%d  enqueued=%s",
			cmd.CommandID, cmd.WordID, cmd.Status, cmd.Attempts,
			cmd.EnqueuedAt.Format(time.RFC3339))
		if cmd.LastError != "" {
			line += "  last_error=" + cmd.LastError
		}
		fmt.Println(line)
	}

	if *drop {
		for _, cmd := range pending {
			if err := ob.MarkDelivered(ctx, cmd.CommandID); err != nil {
				log.Fatalf("Failed to drop command %s: %v", cmd.CommandID, err)
			}
		}
		fmt.Printf("Dropped %d command(s).\n", len(pending))
	}
}
