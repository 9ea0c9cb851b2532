package main

import (
	"context"
	"flag"
	"os"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-paie/internal/audit"
	"go-paie/internal/contribution"
	"go-paie/internal/overtime"
	"go-paie/internal/payroll"
	"go-paie/internal/rules"
	"go-paie/internal/tax"
	"go-paie/internal/vat"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	var rulesPath, payrollPath, vatPath string
	flag.StringVar(&rulesPath, "rules", os.Getenv("RULES_FILE"), "statutory rule table (YAML); compiled-in defaults when empty")
	flag.StringVar(&payrollPath, "payroll", "", "payroll calculation request (JSON)")
	flag.StringVar(&vatPath, "vat", "", "vat calculation request (JSON)")
	flag.Parse()

	table := rules.Default()
	if rulesPath != "" {
		table, err = rules.Load(rulesPath)
		if err != nil {
			logger.Fatal("rule table rejected", zap.Error(err))
		}
	}

	auditLog := audit.NewStdoutAuditLogger()
	ctx := context.Background()

	switch {
	case payrollPath != "":
		var req payroll.CalculationRequest
		decodeRequest(logger, payrollPath, &req)

		svc := payroll.NewService(
			table,
			tax.NewService(table),
			contribution.NewService(table),
			overtime.NewService(table, logger),
			auditLog,
		)
		res, err := svc.CalculatePayroll(ctx, req)
		if err != nil {
			logger.Fatal("payroll calculation failed", zap.Error(err))
		}
		printResult(logger, res)

	case vatPath != "":
		var req vat.Request
		decodeRequest(logger, vatPath, &req)

		res, err := vat.NewService(table, auditLog).ComputeVAT(ctx, req)
		if err != nil {
			logger.Fatal("vat calculation failed", zap.Error(err))
		}
		printResult(logger, res)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func decodeRequest(logger *zap.Logger, path string, out any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("cannot read request", zap.String("path", path), zap.Error(err))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Fatal("cannot parse request", zap.String("path", path), zap.Error(err))
	}
}

func printResult(logger *zap.Logger, res any) {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Fatal("cannot encode result", zap.Error(err))
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Fatal("cannot write result", zap.Error(err))
	}
}
