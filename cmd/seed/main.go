package main

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/shopspring/decimal"
)

const packCount = 25

// Наполнение БД демонстрационными данными для фронтенда
func main() {
	config := config.NewConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Fatal("can't create database:", err.Error())
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Initialize(ctx); err != nil {
		logger.Fatal("can't initialize database:", err.Error())
	}

	store := storage.NewStorage(db)

	geos := []string{"US", "UK", "DE", "PL"}
	deliveryMethods := []string{"Курʼєр", "Поштомат", "Відділення"}

	// Дропы с адресами
	var drops []models.DropData
	for i := 0; i < 4; i++ {
		drop, err := store.AddDrop(ctx, gofakeit.Name(), gofakeit.RandomString(geos))
		if err != nil {
			logger.Error("seed drop:", err.Error())
			continue
		}
		drops = append(drops, *drop)
		for j := 0; j < 2; j++ {
			_, err := store.AddAddress(ctx, models.AddressData{
				DropID:         drop.ID,
				Geo:            drop.Geo,
				DeliveryMethod: gofakeit.RandomString(deliveryMethods),
				Address:        gofakeit.Address().Address,
			})
			if err != nil {
				logger.Error("seed address:", err.Error())
			}
		}
	}

	// Справочники
	var billings []models.LookupData
	for _, name := range []string{"Wise", "Payoneer", "Revolut"} {
		billing, err := store.AddBilling(ctx, name)
		if err != nil {
			logger.Error("seed billing:", err.Error())
			continue
		}
		billings = append(billings, *billing)
	}
	var skups []models.LookupData
	for i := 0; i < 3; i++ {
		skup, err := store.AddSkup(ctx, gofakeit.LastName())
		if err != nil {
			logger.Error("seed skup:", err.Error())
			continue
		}
		skups = append(skups, *skup)
	}

	productTypes := []string{models.ProductTypeTech, models.ProductTypeClothes}
	statuses := []string{
		models.PackStatusOrdered,
		models.PackStatusShipped,
		models.PackStatusArrived,
		models.PackStatusReturning,
	}

	// Посылки в разных статусах
	created := 0
	for i := 0; i < packCount; i++ {
		amount := decimal.NewFromFloat(gofakeit.Price(20, 900)).Round(2)
		pack := models.PackData{
			PackID:                fmt.Sprintf("%dV%d", gofakeit.Number(1, 9), gofakeit.Number(1, 99)),
			StoreName:             gofakeit.Company(),
			Status:                models.PackStatusOrdered,
			Card:                  gofakeit.DigitN(4),
			Amount:                amount,
			AmountWithoutDiscount: amount.Add(decimal.NewFromInt(int64(gofakeit.Number(5, 50)))),
			Quantity:              gofakeit.Number(1, 5),
			Email:                 gofakeit.Email(),
			ProductType:           gofakeit.RandomString(productTypes),
			TrackNumbers:          []string{},
			Comments:              []string{},
		}
		if len(drops) > 0 {
			drop := drops[gofakeit.Number(0, len(drops)-1)]
			pack.DropID = &drop.ID
		}
		if len(billings) > 0 {
			billing := billings[gofakeit.Number(0, len(billings)-1)]
			pack.Billing = &billing.Name
		}
		if len(skups) > 0 {
			skup := skups[gofakeit.Number(0, len(skups)-1)]
			pack.SkupID = &skup.ID
		}

		inserted, err := store.AddPack(ctx, pack)
		if err != nil {
			logger.Error("seed pack:", err.Error())
			continue
		}
		created++

		// часть посылок переводим дальше по жизненному циклу
		status := gofakeit.RandomString(statuses)
		if status != models.PackStatusOrdered {
			track := "TRK" + gofakeit.DigitN(10)
			if err := store.UpdatePack(ctx, inserted.ID, models.PackPatch{TrackNumbers: []string{track}}); err != nil {
				logger.Error("seed track:", err.Error())
			}
			if err := store.UpdatePackStatus(ctx, inserted.ID, status); err != nil {
				logger.Error("seed status:", err.Error())
			}
		}
	}

	logger.Info("Demo data ready, packs created:", created)
}
