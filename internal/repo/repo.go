package repo

import (
	"github.com/GlebRadaev/topups/internal/pg"
	topuprepo "github.com/GlebRadaev/topups/internal/repo/topup-repo"
	userrepo "github.com/GlebRadaev/topups/internal/repo/user-repo"
	"github.com/GlebRadaev/topups/internal/service/healthservice"
	"github.com/GlebRadaev/topups/internal/service/topupservice"
	"github.com/GlebRadaev/topups/internal/store"
)

type TopupRepo interface {
	topupservice.TopupRepo
	healthservice.Pinger
}

type UserRepo interface {
	topupservice.UserRepo
	healthservice.Pinger
}

type Repositories struct {
	Topups TopupRepo
	Users  UserRepo
}

func NewPostgres(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Topups: topuprepo.New(conn),
		Users:  userrepo.New(conn, txManager),
	}
}

// NewSheets keeps topups and users as two tabs of one spreadsheet.
func NewSheets(s store.RecordStore, topupTable, usersTable string) *Repositories {
	return &Repositories{
		Topups: topuprepo.NewSheet(s, topupTable),
		Users:  userrepo.NewSheet(s, usersTable),
	}
}
