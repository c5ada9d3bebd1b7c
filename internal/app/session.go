package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sessionKey string

const (
	SessionKeyUserID  = sessionKey("userID")
	SessionKeyBalance = sessionKey("balance")
)

func (s sessionKey) String() string {
	return string(s)
}

func selectionSessionKey(screeningID int) string {
	return fmt.Sprintf("selection:%d", screeningID)
}

// bindSessionToUser drops session state that belongs to another user.
func (app *Application) bindSessionToUser(ctx context.Context, userID uuid.UUID) {
	owner := app.sessionManager.GetString(ctx, SessionKeyUserID.String())
	if owner == userID.String() {
		return
	}

	if owner != "" {
		app.sessionManager.Clear(ctx)
	}

	app.sessionManager.Put(ctx, SessionKeyUserID.String(), userID.String())
}

func (app *Application) sessionSelection(ctx context.Context, screeningID int) string {
	return app.sessionManager.GetString(ctx, selectionSessionKey(screeningID))
}

func (app *Application) putSessionSelection(ctx context.Context, screeningID int, label string) {
	if label == "" {
		app.sessionManager.Remove(ctx, selectionSessionKey(screeningID))
		return
	}

	app.sessionManager.Put(ctx, selectionSessionKey(screeningID), label)
}

// balanceHint returns the last balance fetched in this session, if any.
func (app *Application) balanceHint(ctx context.Context) (decimal.Decimal, bool) {
	raw := app.sessionManager.GetString(ctx, SessionKeyBalance.String())
	if raw == "" {
		return decimal.Zero, false
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}

	return balance, true
}

func (app *Application) putBalanceHint(ctx context.Context, balance decimal.Decimal) {
	app.sessionManager.Put(ctx, SessionKeyBalance.String(), balance.String())
}

func (app *Application) dropBalanceHint(ctx context.Context) {
	app.sessionManager.Remove(ctx, SessionKeyBalance.String())
}
