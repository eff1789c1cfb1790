package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/certification-manager-api/infrastructure/spreadsheet"
	"github.com/vfg2006/certification-manager-api/internal/config"
	"github.com/vfg2006/certification-manager-api/internal/domain"
	"github.com/vfg2006/certification-manager-api/internal/usecases/importing"
	"github.com/vfg2006/certification-manager-api/internal/usecases/scoring"
	"github.com/vfg2006/certification-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/certification-manager-api/pkg/log"
	"github.com/vfg2006/certification-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// cycleReport é a saída consolidada do processamento
type cycleReport struct {
	Cycle      domain.CycleResult       `json:"cycle"`
	Records    []domain.SaleRecord      `json:"records"`
	Simulation *domain.SimulationResult `json:"simulation,omitempty"`
}

func main() {
	// Inicializa configuração de logs
	configureLogger()

	exportPath := flag.String("export", "", "Exporta os registros aceitos para um arquivo xlsx")
	targetScore := flag.Float64("target", 0, "Meta de pontuação para o simulador (0 desliga)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "uso: certification [-export saida.xlsx] [-target pontos] arquivo.xlsx:TORRE [...]")
		fmt.Fprintf(os.Stderr, "torres aceitas: %v\n", domain.SourceSheets)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)
	logger.WithField("correlation_id", correlationID).Info("Processamento de ciclo iniciado")

	importer := importing.NewService(cfg, spreadsheet.NewReader())

	var records []domain.SaleRecord
	for _, arg := range flag.Args() {
		path, sheet, err := parseFileArg(arg)
		if err != nil {
			logger.WithError(err).Fatal("Argumento de arquivo inválido")
		}

		imported, err := importer.Import(ctx, path, sheet)
		if err != nil {
			logger.WithError(err).Fatalf("Falha ao importar %s", path)
		}
		records = append(records, imported...)
	}

	scorer := scoring.NewService(nil, nil)
	cycle := scorer.CycleResult(records, cfg.Cycle.StartDate, cfg.Cycle.EndDate)

	logger.Infof("Ciclo apurado: %s com %s pontos de média (bônus de %.1f%%)",
		cycle.Classification.Label(), utils.FormatPoints(cycle.AverageScore), cycle.BonusPercent)

	report := cycleReport{Cycle: cycle, Records: records}

	if *targetScore > 0 {
		simulator := simulating.NewService(scorer)
		simulation := simulator.Simulate(domain.SimulationParams{
			TargetScore:         *targetScore,
			MonthsRemaining:     monthsRemaining(time.Now(), cfg.Cycle.EndDate),
			CurrentMonthlyScore: cycle.AverageScore,
			AvgMonthlyRevenue:   avgMonthlyRevenue(cycle.MonthlyResults),
		})
		report.Simulation = &simulation

		logger.Infof("Meta de %s pontos: %s pontos/mês, cerca de %s de receita mensal",
			utils.FormatPoints(simulation.TargetScore),
			utils.FormatPoints(simulation.PointsPerMonth),
			utils.FormatCurrency(simulation.RevenueNeededPerMonth))
	}

	if *exportPath != "" {
		if err := spreadsheet.NewExporter().Export(records, *exportPath); err != nil {
			logger.WithError(err).Fatal("Falha ao exportar os registros")
		}
		logger.Infof("Registros exportados para %s", *exportPath)
	}

	if err := writeReport(cfg, report); err != nil {
		logger.WithError(err).Fatal("Falha ao escrever o relatório do ciclo")
	}
}

// parseFileArg separa "caminho.xlsx:TORRE" em caminho e torre de origem
func parseFileArg(arg string) (string, domain.SourceSheet, error) {
	separator := strings.LastIndex(arg, ":")
	if separator < 0 {
		return "", "", fmt.Errorf("esperado caminho.xlsx:TORRE, recebido %q", arg)
	}

	sheet, err := domain.ParseSourceSheet(arg[separator+1:])
	if err != nil {
		return "", "", err
	}

	return arg[:separator], sheet, nil
}

// monthsRemaining conta os meses-calendário entre a data atual e o fim do
// ciclo, inclusivo
func monthsRemaining(now, periodEnd time.Time) int {
	months := (periodEnd.Year()-now.Year())*12 + int(periodEnd.Month()) - int(now.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}

// avgMonthlyRevenue calcula a receita média dos meses com atividade
func avgMonthlyRevenue(results []domain.MonthlyResult) float64 {
	total := 0.0
	monthsWithRevenue := 0
	for _, monthly := range results {
		if !monthly.HasRevenue() {
			continue
		}
		monthsWithRevenue++
		for _, revenue := range monthly.Revenue {
			total += revenue
		}
	}

	if monthsWithRevenue == 0 {
		return 0
	}
	return total / float64(monthsWithRevenue)
}

// writeReport emite o relatório em JSON no caminho configurado ou no stdout
func writeReport(cfg *config.Config, report cycleReport) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if cfg.Report.OutputPath != "" {
		return os.WriteFile(cfg.Report.OutputPath, payload, 0o644)
	}

	_, err = fmt.Println(string(payload))
	return err
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
