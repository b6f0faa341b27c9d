// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/samber/lo"

	"vocab_learn_client/internal/api"
	"vocab_learn_client/internal/apitest"
	"vocab_learn_client/internal/config"
	"vocab_learn_client/internal/importer"
	"vocab_learn_client/internal/model"
	"vocab_learn_client/internal/outbox"
	"vocab_learn_client/internal/scheduler"
	"vocab_learn_client/internal/service"
	"vocab_learn_client/internal/state"
)

func main() {
	_ = godotenv.Load()

	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
	)

	// 接続先が未設定なら、デモ用にインメモリの擬似APIを立ててそこへつなぐ
	baseURL := config.Cfg.API.BaseURL
	var embedded *http.Server
	if baseURL == "" {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			slog.Error("Error starting embedded API listener", slog.Any("error", err))
			os.Exit(1)
		}
		embedded = &http.Server{Handler: apitest.NewServer(logger)}
		go func() {
			if err := embedded.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Embedded API server stopped unexpectedly", slog.Any("error", err))
			}
		}()
		baseURL = "http://" + ln.Addr().String()
		slog.Info("No API base URL configured, using embedded demo server",
			slog.String("base_url", baseURL))
	}

	client, err := api.NewClient(baseURL, api.WithLogger(logger))
	if err != nil {
		slog.Error("Error creating API client", slog.Any("error", err))
		os.Exit(1)
	}

	// 送信キュー用のローカルDB
	db, err := outbox.NewDB(config.Cfg.Outbox.Path, logger)
	if err != nil {
		slog.Error("Error initializing outbox database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing outbox database", slog.Any("error", err))
		} else {
			slog.Info("Outbox database closed.")
		}
	}()

	ob := outbox.NewGormOutbox(db)
	flusher := outbox.NewFlusher(ob, client, config.Cfg.Outbox.FlushRPS, logger)

	// ストアとサービス
	vocabStore := state.NewVocabStore(logger)
	detailsStore := state.NewDetailsStore(logger)
	quizStore := state.NewQuizStore(logger)
	alerter := service.NewSlogAlerter(logger)

	deps := services{
		vocab:        service.NewVocabService(client, vocabStore, ob, flusher, alerter, config.Cfg.App.PageSize, logger),
		details:      service.NewDetailsService(client, detailsStore, alerter, logger),
		quiz:         service.NewQuizService(client, quizStore, vocabStore, alerter, logger),
		analytics:    service.NewAnalyticsService(client, logger),
		client:       client,
		vocabStore:   vocabStore,
		detailsStore: detailsStore,
		quizStore:    quizStore,
		logger:       logger,
	}

	// ストアの遷移は開発ログで追えるようにしておく
	unsubscribe := vocabStore.Subscribe(func(st state.VocabState) {
		slog.Debug("Vocab state changed",
			slog.Int("lists", len(st.Lists)),
			slog.Bool("loading", st.Loading),
			slog.String("error", st.Error),
		)
	})
	defer unsubscribe()

	sched := scheduler.New(flusher, deps.analytics, logger)
	if err := sched.Start(
		time.Duration(config.Cfg.Outbox.FlushIntervalSeconds)*time.Second,
		time.Duration(config.Cfg.App.SummaryIntervalSeconds)*time.Second,
	); err != nil {
		slog.Error("Error starting scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	// Ctrl+C で実行中のリクエストごと中断できる
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runSession(ctx, deps); err != nil {
		if errors.Is(err, model.ErrCancelled) {
			slog.Info("Session interrupted")
		} else {
			slog.Error("Demo session failed", slog.Any("error", err))
		}
	}

	slog.Info("Session finished. Press Ctrl+C to exit.")
	<-ctx.Done()
	slog.Info("Shutting down...")

	sched.Stop()

	// 終了前に未送信の進捗を流し切る
	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if res, err := flusher.Flush(flushCtx); err != nil {
		slog.Error("Final outbox flush failed", slog.Any("error", err))
	} else if res.Delivered > 0 || res.Failed > 0 {
		slog.Info("Final outbox flush",
			slog.Int("delivered", res.Delivered),
			slog.Int("failed", res.Failed),
		)
	}

	if embedded != nil {
		shutdownCtx, cancelSrv := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelSrv()
		if err := embedded.Shutdown(shutdownCtx); err != nil {
			slog.Error("Embedded API server shutdown failed", slog.Any("error", err))
		}
	}

	log.Println("Client exiting")
}

// newLogger は設定のレベルと APP_ENV に応じたハンドラでロガーを組み立てる
func newLogger(level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

type services struct {
	vocab     service.VocabService
	details   service.DetailsService
	quiz      service.QuizService
	analytics service.AnalyticsService

	client       *api.Client
	vocabStore   *state.VocabStore
	detailsStore *state.DetailsStore
	quizStore    *state.QuizStore
	logger       *slog.Logger
}

// runSession は一連の操作をひと通り流すデモ。本来この層は UI に
// 組み込まれて使われるので、フォームへの入力もディスパッチで行う。
func runSession(ctx context.Context, s services) error {
	if err := s.vocab.FetchLists(ctx, 1); err != nil {
		return fmt.Errorf("fetch lists: %w", err)
	}

	st := s.vocabStore.State()
	if len(st.Lists) == 0 {
		if err := createStarterList(ctx, s); err != nil {
			return err
		}
		st = s.vocabStore.State()
	}

	fmt.Printf("Vocabulary lists (%d):\n", len(st.Lists))
	for _, l := range st.Lists {
		fmt.Printf("  - %s (%d words)\n", l.Name, l.Counts.Words)
	}

	target := st.Lists[0]

	// 設定でスプレッドシートが指定されていれば取り込む
	if file := config.Cfg.Import.File; file != "" {
		imp := importer.New(s.client, s.logger)
		res, err := imp.ImportFile(ctx, target.ListID, file, importer.DefaultConfig())
		if err != nil {
			return fmt.Errorf("import %s: %w", file, err)
		}
		fmt.Printf("Imported %d/%d rows from %s (skipped %d)\n",
			res.Created, res.TotalProcessed, file, res.Skipped)
		if err := s.vocab.FetchLists(ctx, 1); err != nil {
			return fmt.Errorf("refresh after import: %w", err)
		}
	}

	// 詳細画面ぶんの取得と表示
	if err := s.details.FetchList(ctx, target.ListID); err != nil {
		return fmt.Errorf("fetch list details: %w", err)
	}
	detail := s.detailsStore.State().List
	fmt.Printf("\n%s:\n", detail.Name)
	for _, w := range detail.Words {
		status := model.StatusNotStarted
		if w.Progress != nil {
			status = w.Progress.Status
		}
		fmt.Printf("  %-14s %-14s [%s]\n", w.Term, w.Translation, status)
	}

	// 進捗の楽観更新。失敗してもコマンドはキューに残って再送される
	if len(detail.Words) > 0 {
		word := detail.Words[0]
		if err := s.vocab.UpdateWordProgress(ctx, word.WordID, model.StatusLearning); err != nil {
			if errors.Is(err, model.ErrCancelled) {
				return err
			}
			s.logger.Warn("Progress update failed, command queued for retry", slog.Any("error", err))
		} else {
			fmt.Printf("\nMarked %q as learning\n", word.Term)
		}
	}

	// クイズを生成して全問正解で提出する
	questionCount := len(detail.Words)
	if questionCount > 3 {
		questionCount = 3
	}
	if questionCount > 0 {
		if err := s.quiz.GenerateQuiz(ctx, target.ListID, questionCount); err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		active := s.quizStore.State().Active
		for _, q := range active.Questions {
			s.quizStore.Dispatch(state.SelectAnswer{QuestionID: q.QuestionID, Answer: q.CorrectAnswer})
		}
		if err := s.quiz.SubmitQuiz(ctx); err != nil {
			return fmt.Errorf("submit quiz: %w", err)
		}
		attempt := s.quizStore.State().Attempt
		fmt.Printf("\nQuiz %q: %d/%d correct (score %.0f%%)\n",
			active.Title, attempt.CorrectAnswers, attempt.TotalQuestions, attempt.Score*100)
	}

	// 学習サマリとおすすめ
	summary, err := s.analytics.FetchSummary(ctx)
	if err != nil {
		return fmt.Errorf("fetch summary: %w", err)
	}
	fmt.Printf("\nProgress: %d lists, %d words (mastered %d / learning %d / not started %d)\n",
		summary.TotalLists, summary.TotalWords,
		summary.Breakdown.Mastered, summary.Breakdown.Learning, summary.Breakdown.NotStarted)

	recs, err := s.analytics.FetchRecommendations(ctx)
	if err != nil {
		return fmt.Errorf("fetch recommendations: %w", err)
	}
	if len(recs) > 0 {
		fmt.Println("Recommended next:")
		for _, rec := range recs {
			fmt.Printf("  - %s (%s)\n", rec.Term, rec.Reason)
		}
	}
	return nil
}

// createStarterList は空のアカウント向けに最初のリストと単語を作る
func createStarterList(ctx context.Context, s services) error {
	s.vocabStore.Dispatch(state.OpenListModal{})
	s.vocabStore.Dispatch(state.UpdateListForm{Patch: model.ListFormPatch{
		Name:           lo.ToPtr("Getting Started"),
		Description:    lo.ToPtr("A few words to try the client with"),
		TargetLanguage: lo.ToPtr("en"),
		NativeLanguage: lo.ToPtr("ja"),
	}})
	if err := s.vocab.CreateList(ctx); err != nil {
		return fmt.Errorf("create starter list: %w", err)
	}

	listID := s.vocabStore.State().Lists[0].ListID
	starters := []struct{ term, translation string }{
		{"hello", "こんにちは"},
		{"thank you", "ありがとう"},
		{"goodbye", "さようなら"},
	}
	for _, w := range starters {
		s.vocabStore.Dispatch(state.OpenWordModal{ListID: listID})
		s.vocabStore.Dispatch(state.UpdateWordForm{Patch: model.WordFormPatch{
			Term:        lo.ToPtr(w.term),
			Translation: lo.ToPtr(w.translation),
		}})
		if err := s.vocab.AddWord(ctx); err != nil {
			return fmt.Errorf("add starter word %q: %w", w.term, err)
		}
	}
	return nil
}
