package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const optionExit = 6

var menuOptions = map[int]domain.ReportType{
	1: domain.ReportTotalSales,
	2: domain.ReportPopularProducts,
	3: domain.ReportUnpopularProducts,
	4: domain.ReportCustomers,
	5: domain.ReportSalesTrends,
}

// Menu é o laço interativo que gera um relatório por escolha do usuário
type Menu struct {
	reporter reporting.Reporter
	scanner  *bufio.Scanner
	out      io.Writer
}

func NewMenu(reporter reporting.Reporter, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		reporter: reporter,
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "Escolha uma opção:")
	fmt.Fprintln(m.out, "1. Valor total das vendas")
	fmt.Fprintln(m.out, "2. Cinco produtos mais vendidos")
	fmt.Fprintln(m.out, "3. Cinco produtos menos vendidos")
	fmt.Fprintln(m.out, "4. Clientes com gasto acima de um valor")
	fmt.Fprintln(m.out, "5. Tendências de vendas")
	fmt.Fprintln(m.out, "6. Sair")
	fmt.Fprint(m.out, "Digite sua opção: ")
}

func (m *Menu) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

// Run executa o laço até a opção de saída, o fim da entrada ou o cancelamento do contexto
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printOptions()

		line, ok := m.readLine()
		if !ok {
			return m.scanner.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Entrada inválida, digite um número.")
			continue
		}

		if choice == optionExit {
			fmt.Fprintln(m.out, "Encerrando a aplicação.")
			return nil
		}

		reportType, ok := menuOptions[choice]
		if !ok {
			fmt.Fprintln(m.out, "Opção inválida, tente novamente.")
			continue
		}

		params := reporting.Params{}
		if reportType == domain.ReportCustomers {
			threshold, ok := m.readThreshold()
			if !ok {
				continue
			}
			params.Threshold = threshold
		}

		report, err := m.reporter.Generate(ctx, reportType, params)
		if err != nil {
			logrus.WithError(err).WithField("report_type", reportType).Error("Erro ao gerar relatório")
			fmt.Fprintf(m.out, "Erro ao gerar relatório: %v\n", err)
			continue
		}

		fmt.Fprintln(m.out, report.Content())
	}
}

func (m *Menu) readThreshold() (decimal.Decimal, bool) {
	fmt.Fprint(m.out, "Digite o valor mínimo de gasto: ")

	line, ok := m.readLine()
	if !ok {
		return decimal.Zero, false
	}

	threshold, err := utils.ParseAmount(line)
	if err != nil {
		fmt.Fprintln(m.out, "Valor inválido, tente novamente.")
		return decimal.Zero, false
	}
	return threshold, true
}
