package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var year int
	var month int
	var file string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机员工, 2: 从 JSON 文件导入员工, 3: 生成并保存指定月份的坐班表)")
	flag.IntVar(&n, "n", 5, "要插入的员工数量")
	flag.IntVar(&year, "year", 0, "坐班表的年份")
	flag.IntVar(&month, "month", 0, "坐班表的月份")
	flag.StringVar(&file, "file", "", "员工导入文件的路径")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository 并建表
	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(); err != nil {
		logger.Error("无法初始化数据库表", "error", err)
		return
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
		} else {
			seed.SeedRandomEmployees(repo, n)
		}
	case 2:
		if file == "" {
			slog.Error("请指定员工导入文件的路径")
		} else {
			seed.ImportEmployeesFromFile(repo, file)
		}
	case 3:
		seed.GenerateAndSaveSchedule(repo, cfg, int32(year), int32(month))
	default:
		slog.Error("指定的操作非法")
	}
}
