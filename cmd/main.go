package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/telebot.v3"

	"shift-bot/config"
	"shift-bot/internal/app/service"
	"shift-bot/internal/delivery/telegram"
	"shift-bot/internal/delivery/telegram/router"
	"shift-bot/internal/domain"
	"shift-bot/internal/repository/sheets"
	"shift-bot/internal/repository/sqlite"
	"shift-bot/internal/repository/table"
	"shift-bot/internal/schema"
	"shift-bot/pkg/calendar"
	"shift-bot/pkg/workerpool"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("неизвестная таймзона", zap.String("tz", cfg.Timezone), zap.Error(err))
	}

	ctx := context.Background()
	shiftRepo, leaveRepo := buildRepos(ctx, cfg, logger, loc)

	pool := workerpool.NewWorkerPool(4, 32)
	defer pool.Close()

	ledger := service.NewShiftLedger(shiftRepo, logger)
	journal := service.NewLeaveJournal(leaveRepo, logger)
	reports := service.NewReportBuilder(ledger)

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		logger.Fatal("запуск бота", zap.Error(err))
	}

	handler := &telegram.Handler{
		Bot:      bot,
		Ledger:   ledger,
		Journal:  journal,
		Reports:  reports,
		Async:    service.NewAsyncService(pool),
		Calendar: &calendar.CalendarController{Bot: bot},
		Router:   router.New(logger),
		Log:      logger,
		Loc:      loc,
	}
	handler.Register()

	logger.Info("бот запущен", zap.String("backend", cfg.StoreBackend))
	bot.Start()
}

// buildRepos собирает бэкенд хранилища. Схема общего листа проверяется
// до старта: несовместимый заголовок — фатальная ошибка, команды не
// обслуживаются.
func buildRepos(ctx context.Context, cfg *config.Config, logger *zap.Logger, loc *time.Location) (domain.ShiftRepo, domain.LeaveRepo) {
	switch cfg.StoreBackend {
	case config.BackendSqlite:
		db, err := sql.Open("sqlite3", cfg.SqlitePath)
		if err != nil {
			logger.Fatal("подключение к базе", zap.Error(err))
		}
		if err := sqlite.Migrate(db); err != nil {
			logger.Fatal("миграция базы", zap.Error(err))
		}
		return sqlite.NewSqliteShiftRepo(db, loc), sqlite.NewSqliteLeaveRepo(db)

	case config.BackendSheets:
		client, err := sheets.NewClient(ctx, []byte(cfg.CredentialsJSON), cfg.SpreadsheetID)
		if err != nil {
			logger.Fatal("подключение к Google Sheets", zap.Error(err))
		}
		shiftsWS := client.Worksheet(cfg.ShiftsSheet)
		leavesWS := client.Worksheet(cfg.LeavesSheet)
		shiftsTable := schema.Shifts
		shiftsTable.Sheet = cfg.ShiftsSheet
		leavesTable := schema.Leaves
		leavesTable.Sheet = cfg.LeavesSheet
		if err := schema.Ensure(ctx, shiftsWS, shiftsTable); err != nil {
			logger.Fatal("схема листа Shifts", zap.Error(err))
		}
		if err := schema.Ensure(ctx, leavesWS, leavesTable); err != nil {
			logger.Fatal("схема листа Leaves", zap.Error(err))
		}
		return table.NewShiftRepo(shiftsWS, loc), table.NewLeaveRepo(leavesWS)

	default:
		logger.Fatal("неизвестный бэкенд хранилища", zap.String("backend", cfg.StoreBackend))
		return nil, nil
	}
}
