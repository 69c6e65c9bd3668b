package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client — процессный хэндл Google Sheets: открывается один раз на
// старте и передаётся явно, без скрытого глобального состояния.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewClient(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Worksheet возвращает адаптер одного листа как domain.RowStore.
func (c *Client) Worksheet(name string) *Worksheet {
	return &Worksheet{svc: c.svc, spreadsheetID: c.spreadsheetID, name: name}
}
