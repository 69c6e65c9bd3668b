package telegram

import (
	"strings"

	"gopkg.in/telebot.v3"

	"shift-bot/internal/domain"
)

// identityFromContext сводит данные отправителя к доменной политике:
// стабильный ключ из @username либо числового ID, никнейм из имени
// профиля. Составное отображаемое имя ключом не бывает.
func identityFromContext(c telebot.Context) (domain.Identity, error) {
	sender := c.Sender()
	if sender == nil {
		return domain.Identity{}, domain.ErrNoIdentity
	}
	nickname := strings.TrimSpace(strings.TrimSpace(sender.FirstName) + " " + strings.TrimSpace(sender.LastName))
	return domain.ResolveIdentity(sender.ID, sender.Username, nickname)
}
