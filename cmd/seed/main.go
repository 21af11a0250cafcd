package main

import (
	"github.com/sirupsen/logrus"

	"photoorders/internal/config"
	"photoorders/internal/database"
	"photoorders/internal/domain"
	"photoorders/internal/modules/auth"
	"photoorders/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	logrus.Info("cleaning old data...")
	db.Exec("DELETE FROM user_orders")
	db.Exec("DELETE FROM kindergarten_requests")
	db.Exec("DELETE FROM service_requests")
	db.Exec("DELETE FROM kindergarten_classes")
	db.Exec("DELETE FROM kindergartens")
	db.Exec("DELETE FROM preschools")
	db.Exec("DELETE FROM studio_samples")
	db.Exec("DELETE FROM costumes")
	db.Exec("DELETE FROM service_types")
	db.Exec("DELETE FROM themes")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM service_additions")
	db.Exec("DELETE FROM paper_sizes")
	db.Exec("DELETE FROM app_configs")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	logrus.Info("creating users...")

	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		logrus.WithError(err).Fatal("hashing admin password")
	}
	admin := domain.User{
		Phone:        "77000000001",
		Email:        "admin@photoorders.kz",
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
		Name:         "Администратор",
	}
	db.Create(&admin)
	logrus.Info("admin created: admin@photoorders.kz / admin123")

	clients := []domain.User{
		{Phone: "77001112233", Name: "Асель", Email: "asel@mail.kz", Role: domain.RoleClient},
		{Phone: "77004445566", Name: "Бекзат", Email: "bekzat@gmail.com", Role: domain.RoleClient},
		{Phone: "77007778899", Name: "Дина", Email: "dina@yandex.kz", Role: domain.RoleClient},
	}
	for i := range clients {
		db.Create(&clients[i])
	}

	// ================== CATALOG ==================
	logrus.Info("creating paper sizes...")
	sizes := []domain.PaperSize{
		{Size: "10x15", Price: 500, Discount: 0},
		{Size: "15x21", Price: 900, Discount: 10},
		{Size: "21x30", Price: 1500, Discount: 0},
		{Size: "30x40", Price: 2800, Discount: 15},
	}
	for i := range sizes {
		sizes[i].NetPrice = pricing.Net(sizes[i].Price, sizes[i].Discount)
		db.Create(&sizes[i])
	}

	logrus.Info("creating service additions...")
	ten := 10
	additions := []domain.ServiceAddition{
		{Name: "Магнит", Service: domain.AdditionKindergarten, PerItem: true, Price: 700, Discount: 0},
		{Name: "Календарь", Service: domain.AdditionKindergarten, PerItem: true, Price: 1200, Discount: 10},
		{Name: "Общее фото класса", Service: domain.AdditionKindergarten, Price: 1500, Discount: 0},
		{Name: "Ретушь", Service: domain.AdditionOther, PerItem: true, Price: 500, Discount: 0},
		{Name: "Все кадры без обработки", Service: domain.AdditionOther, Conditional: true, NumOfImgCondition: &ten, Price: 3000, Discount: 0},
	}
	for i := range additions {
		additions[i].NetPrice = pricing.Net(additions[i].Price, additions[i].Discount)
		db.Create(&additions[i])
	}

	logrus.Info("creating packages...")
	packages := []domain.Package{
		{Name: "Мини", Quantity: 5, Price: 8000, Discount: 0},
		{Name: "Стандарт", Quantity: 10, Price: 14000, Discount: 10},
		{Name: "Премиум", Quantity: 20, Price: 25000, Discount: 15},
	}
	for i := range packages {
		packages[i].NetPrice = pricing.Net(packages[i].Price, packages[i].Discount)
		db.Create(&packages[i])
	}

	logrus.Info("creating themes...")
	themes := []domain.Theme{
		{Title: "Новый год", Description: "Ёлка, подарки, гирлянды", AdditionalCharge: 2000, ShowInStudio: true},
		{Title: "Весна", Description: "Цветочные декорации", AdditionalCharge: 1000, ShowInStudio: true},
		{Title: "Классика", Description: "Нейтральный фон", AdditionalCharge: 0, ShowInStudio: false},
	}
	for i := range themes {
		db.Create(&themes[i])
	}

	logrus.Info("creating service types...")
	types := []domain.ServiceType{
		{
			Name:        "Тематическая фотосессия",
			Description: "Студийная съёмка в выбранной тематике",
			ThemeBased:  true,
			Themes:      []int64{themes[0].ID, themes[1].ID, themes[2].ID},
			Packages:    []int64{packages[0].ID, packages[1].ID, packages[2].ID},
		},
		{
			Name:        "Портретная съёмка",
			Description: "Индивидуальные портреты без декораций",
			ThemeBased:  false,
			Packages:    []int64{packages[0].ID, packages[1].ID},
		},
	}
	for i := range types {
		db.Create(&types[i])
	}

	logrus.Info("creating costumes...")
	costumes := []domain.Costume{
		{Title: "Космонавт", ImagePath: "costumes/cosmonaut.jpg", Sizes: []int64{sizes[0].ID, sizes[1].ID}, Tags: "мальчик,космос"},
		{Title: "Принцесса", ImagePath: "costumes/princess.jpg", Sizes: []int64{sizes[0].ID, sizes[1].ID, sizes[2].ID}, Tags: "девочка"},
		{Title: "Пират", ImagePath: "costumes/pirate.jpg", Sizes: []int64{sizes[1].ID}, Tags: "мальчик,море", WithFriend: true},
	}
	for i := range costumes {
		db.Create(&costumes[i])
	}

	logrus.Info("creating studio samples...")
	samples := []domain.StudioSample{
		{ImagePath: "samples/newyear_01.jpg", Description: "Новогодняя серия", Tags: "новый год"},
		{ImagePath: "samples/portrait_01.jpg", Description: "Портрет на сером фоне", Tags: "портрет"},
	}
	for i := range samples {
		db.Create(&samples[i])
	}

	// ================== KINDERGARTENS ==================
	logrus.Info("creating kindergartens...")
	gardens := []domain.Kindergarten{
		{Name: "Балдырған", District: "Алмалинский", Active: true},
		{Name: "Солнышко", District: "Бостандыкский", Active: true},
		{Name: "Ақбота", District: "Медеуский", Active: false},
	}
	for i := range gardens {
		db.Create(&gardens[i])
	}

	classes := []domain.KindergartenClass{
		{KindergartenID: gardens[0].ID, Name: "Старшая группа", Active: true},
		{KindergartenID: gardens[0].ID, Name: "Средняя группа", Active: true},
		{KindergartenID: gardens[1].ID, Name: "Подготовительная", Active: true},
	}
	for i := range classes {
		db.Create(&classes[i])
	}

	preschools := []domain.Preschool{
		{Name: "Зерек бала", District: "Алмалинский"},
		{Name: "Эрудит", District: "Ауэзовский"},
	}
	for i := range preschools {
		db.Create(&preschools[i])
	}

	// ================== APP STATUS ==================
	db.Create(&domain.AppConfig{Status: domain.AppLive})

	logrus.Info("seed complete")
}
