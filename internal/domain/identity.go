package domain

import "strconv"

// Identity — стабильный ключ отправителя плюс его текущее отображаемое
// имя. Ключом всегда служит StableID, никогда изменяемый никнейм.
type Identity struct {
	StableID string
	Nickname string
}

// Label собирает отображаемое имя: "stable (nickname)" либо просто
// StableID, если никнейма нет или он совпадает со стабильным именем.
func (i Identity) Label() string {
	if i.Nickname == "" || i.Nickname == i.StableID {
		return i.StableID
	}
	return i.StableID + " (" + i.Nickname + ")"
}

// ResolveIdentity выбирает стабильный ключ: хэндл аккаунта, иначе
// числовой ID. Отсутствие обоих — нарушение предусловия вызова.
func ResolveIdentity(accountID int64, handle, nickname string) (Identity, error) {
	stable := handle
	if stable == "" {
		if accountID == 0 {
			return Identity{}, ErrNoIdentity
		}
		stable = strconv.FormatInt(accountID, 10)
	}
	return Identity{StableID: stable, Nickname: nickname}, nil
}
