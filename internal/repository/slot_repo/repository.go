package slot_repo

import (
	"context"
	"encoding/json"
	"errors"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "slot_state"
	playerId   = "user_id"
	colBet     = "bet"
	colWin     = "win"
	colSymbols = "symbols"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSlotRepository(dbc *pgxpool.Pool) repository.SlotRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetState - получение состояния автомата пользователя (ставка, последний
// выигрыш, последние символы).
// Возвращает model.ErrStateNotFound, если записи нет
func (r *repo) GetState(ctx context.Context, userID int) (*model.SlotState, error) {
	// Формируем запрос
	query := sq.Select(colBet, colWin, colSymbols).
		From(table).
		Where(sq.Eq{playerId: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		bet, win   int64
		symbolsRaw []byte
	)
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&bet, &win, &symbolsRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStateNotFound
		}
		return nil, err
	}

	state := &model.SlotState{
		Bet: uint(bet),
		Win: uint(win),
	}
	if len(symbolsRaw) > 0 {
		if err := json.Unmarshal(symbolsRaw, &state.Symbols); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// UpsertState - сохранение состояния автомата пользователя.
// Если записи нет, создается новая
func (r *repo) UpsertState(ctx context.Context, userID int, state *model.SlotState) error {
	symbolsRaw, err := json.Marshal(state.Symbols)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Update(table).
		Set(colBet, int64(state.Bet)).
		Set(colWin, int64(state.Win)).
		Set(colSymbols, symbolsRaw).
		Where(sq.Eq{playerId: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(playerId, colBet, colWin, colSymbols).
			Values(userID, int64(state.Bet), int64(state.Win), symbolsRaw).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}

	return nil
}

// conn - соединение из контекста транзакции, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}
