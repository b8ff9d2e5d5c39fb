package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mmynk/mealwiser/internal/ledger"
	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/report"
)

const usageText = `usage: mealctl <command> [flags]

commands:
  employee add -name NAME [-type regular|irregular|guest]
  employee list
  employee rm ID
  deposit add -employee ID -amount N [-month YYYY-MM]
  deposit rm ID
  day submit -date YYYY-MM-DD -total N -select ID:lunch|dinner|both|none ...
  meal add -employee ID -date YYYY-MM-DD -total N -meals N
  meal rm ID
  entry set -employee ID -date YYYY-MM-DD [-lunch] [-dinner]
  entry rm ID
  balance [-month YYYY-MM] [-employee ID]
  report [-month YYYY-MM] [-xlsx FILE]`

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	if e.msg == "" {
		return usageText
	}
	return e.msg + "\n\n" + usageText
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type app struct {
	engine *ledger.Engine
	ledger *ledger.Ledger
	out    io.Writer
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &usageError{}
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "balance":
		return a.balance(rest)
	case "report":
		return a.report(rest)
	}

	if len(rest) == 0 {
		return usagef("%s: missing subcommand", cmd)
	}
	sub, rest := rest[0], rest[1:]
	switch cmd + " " + sub {
	case "employee add":
		return a.employeeAdd(ctx, rest)
	case "employee list":
		return a.employeeList()
	case "employee rm":
		return a.remove(ctx, "employee rm", rest, a.engine.DeleteEmployee)
	case "deposit add":
		return a.depositAdd(ctx, rest)
	case "deposit rm":
		return a.remove(ctx, "deposit rm", rest, a.engine.DeleteDeposit)
	case "day submit":
		return a.daySubmit(ctx, rest)
	case "meal add":
		return a.mealAdd(ctx, rest)
	case "meal rm":
		return a.remove(ctx, "meal rm", rest, a.engine.DeleteMealCost)
	case "entry set":
		return a.entrySet(ctx, rest)
	case "entry rm":
		return a.remove(ctx, "entry rm", rest, a.engine.DeleteMealEntry)
	default:
		return usagef("unknown command %q", cmd+" "+sub)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usagef("%s: %v", fs.Name(), err)
	}
	return nil
}

func currentMonth() string {
	return time.Now().Format(models.MonthLayout)
}

func (a *app) employeeAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("employee add")
	name := fs.String("name", "", "display name")
	typ := fs.String("type", string(models.EmployeeRegular), "regular, irregular or guest")
	if err := parse(fs, args); err != nil {
		return err
	}

	emp, err := a.engine.AddEmployee(ctx, a.ledger, *name, models.EmployeeType(strings.ToLower(*typ)))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s) %s\n", emp.Name, emp.Type, emp.ID)
	return nil
}

func (a *app) employeeList() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE")
	for _, emp := range a.ledger.Employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", emp.ID, emp.Name, emp.Type)
	}
	return tw.Flush()
}

func (a *app) remove(ctx context.Context, name string, args []string, del func(context.Context, *ledger.Ledger, string) error) error {
	if len(args) != 1 {
		return usagef("%s: expected exactly one ID", name)
	}
	if err := del(ctx, a.ledger, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %s\n", args[0])
	return nil
}

func (a *app) depositAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("deposit add")
	employeeID := fs.String("employee", "", "employee ID")
	amount := fs.Float64("amount", 0, "amount credited")
	month := fs.String("month", currentMonth(), "month the deposit counts towards (YYYY-MM)")
	if err := parse(fs, args); err != nil {
		return err
	}

	dep, err := a.engine.AddDeposit(ctx, a.ledger, *employeeID, *amount, *month)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deposited %.2f for %s %s\n", dep.Amount, dep.Month, dep.ID)
	return nil
}

// selections collects repeated -select ID:meals flags.
type selections []ledger.Selection

func (s *selections) String() string {
	parts := make([]string, 0, len(*s))
	for _, sel := range *s {
		parts = append(parts, sel.EmployeeID)
	}
	return strings.Join(parts, ",")
}

func (s *selections) Set(v string) error {
	id, meals, ok := strings.Cut(v, ":")
	if !ok || id == "" {
		return fmt.Errorf("selection %q is not ID:meals", v)
	}

	sel := ledger.Selection{EmployeeID: id}
	switch strings.ToLower(meals) {
	case "lunch":
		sel.Lunch = true
	case "dinner":
		sel.Dinner = true
	case "both":
		sel.Lunch, sel.Dinner = true, true
	case "none":
	default:
		return fmt.Errorf("selection %q: meals must be lunch, dinner, both or none", v)
	}
	*s = append(*s, sel)
	return nil
}

func (a *app) daySubmit(ctx context.Context, args []string) error {
	fs := newFlagSet("day submit")
	date := fs.String("date", time.Now().Format(models.DateLayout), "day (YYYY-MM-DD)")
	total := fs.Float64("total", 0, "total cost of the day's meals")
	var sels selections
	fs.Var(&sels, "select", "participation as ID:lunch|dinner|both|none (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}

	costs, err := a.engine.SubmitDay(ctx, a.ledger, *date, *total, sels)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tMEALS\tCOST")
	for _, c := range costs {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", a.employeeName(c.EmployeeID), c.MealCount, c.TotalMealCost)
	}
	return tw.Flush()
}

func (a *app) mealAdd(ctx context.Context, args []string) error {
	fs := newFlagSet("meal add")
	employeeID := fs.String("employee", "", "employee ID")
	date := fs.String("date", time.Now().Format(models.DateLayout), "day (YYYY-MM-DD)")
	total := fs.Float64("total", 0, "employee's cost for the day")
	meals := fs.Int("meals", 1, "meal units covered")
	if err := parse(fs, args); err != nil {
		return err
	}

	cost, err := a.engine.AddMealCost(ctx, a.ledger, *employeeID, *date, *total, *meals)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded %.2f for %s on %s %s\n", cost.TotalMealCost, a.employeeName(cost.EmployeeID), cost.Date, cost.ID)
	return nil
}

func (a *app) entrySet(ctx context.Context, args []string) error {
	fs := newFlagSet("entry set")
	employeeID := fs.String("employee", "", "employee ID")
	date := fs.String("date", time.Now().Format(models.DateLayout), "day (YYYY-MM-DD)")
	lunch := fs.Bool("lunch", false, "had lunch")
	dinner := fs.Bool("dinner", false, "had dinner")
	if err := parse(fs, args); err != nil {
		return err
	}

	entry, err := a.engine.RecordParticipation(ctx, a.ledger, *employeeID, *date, *lunch, *dinner)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s on %s: lunch=%d dinner=%d %s\n", a.employeeName(entry.EmployeeID), entry.Date, entry.Lunch, entry.Dinner, entry.ID)
	return nil
}

func (a *app) balance(args []string) error {
	fs := newFlagSet("balance")
	month := fs.String("month", currentMonth(), "month (YYYY-MM)")
	employeeID := fs.String("employee", "", "only this employee")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := models.ValidateMonth(*month); err != nil {
		return err
	}

	if *employeeID != "" {
		emp, ok := a.ledger.Employee(*employeeID)
		if !ok {
			return fmt.Errorf("employee %s: %w", *employeeID, ledger.ErrNotFound)
		}
		fmt.Fprintf(a.out, "%s %s: deposits %.2f, meals %.2f, balance %.2f\n",
			emp.Name, *month,
			a.ledger.EmployeeDeposits(emp.ID, *month),
			a.ledger.EmployeeMealCosts(emp.ID, *month),
			a.ledger.EmployeeBalance(emp.ID, *month))
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "NAME\tDEPOSITS\tMEALS\tCOST\tBALANCE\t")
	for _, s := range a.ledger.MonthlySummaries(*month) {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%.2f\t%.2f\t\n", a.employeeName(s.EmployeeID), s.Deposits, s.Meals, s.MealCosts, s.Balance)
	}
	return tw.Flush()
}

func (a *app) report(args []string) error {
	fs := newFlagSet("report")
	month := fs.String("month", currentMonth(), "month (YYYY-MM)")
	xlsx := fs.String("xlsx", "", "write an Excel workbook to FILE")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *xlsx == "" {
		return a.balance([]string{"-month", *month})
	}

	f, err := os.Create(*xlsx)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteMonthly(f, a.ledger, *month); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	fmt.Fprintf(a.out, "Wrote %s\n", *xlsx)
	return nil
}

func (a *app) employeeName(id string) string {
	if emp, ok := a.ledger.Employee(id); ok {
		return emp.Name
	}
	return id
}
