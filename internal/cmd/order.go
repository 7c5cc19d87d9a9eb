package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/services"
)

// OrderCmd manages manual session order
type OrderCmd struct {
	Apply OrderApplyCmd `cmd:"apply" help:"Store an order received from another client"`
	Clear OrderClearCmd `cmd:"clear" help:"Forget the manual order of the workspace in scope"`
	Move  OrderMoveCmd  `cmd:"move" help:"Move a session to a position of the visible list"`
	Set   OrderSetCmd   `cmd:"set" help:"Replace the manual order of the workspace in scope"`
	Show  OrderShowCmd  `cmd:"show" help:"Show manual orders" default:"1"`
}

// OrderScope selects the manual order bucket a command works on
type OrderScope struct {
	CurrentWorkspace string `help:"Workspace being viewed (default from settings)"`
	Workspace        string `help:"Workspace filter override; all selects the global order" short:"w"`
}

// apply points the order service at the scoped bucket
func (o OrderScope) apply(cli *CLI) *services.ManualOrderService {
	current := o.CurrentWorkspace
	if current == "" {
		current = cli.loadedSettings().CurrentWorkspace
	}
	orders := cli.Container.OrderService
	orders.SetWorkspaceContext(o.Workspace, current)
	logging.Logger.Debug("Manual order scope selected", "workspace", orders.ActiveKey().String())
	return orders
}

// OrderShowCmd prints manual orders
type OrderShowCmd struct {
	OrderScope `embed:""`

	All    bool   `help:"Show every workspace bucket" short:"a"`
	Format string `help:"Output format: table, json or toml" enum:"table,json,toml" default:"table"`
}

// Run executes the show command
func (o *OrderShowCmd) Run(cli *CLI) error {
	orders := o.apply(cli)

	if !o.All {
		key := orders.ActiveKey()
		return writeOrders(os.Stdout, o.Format, []orderView{{
			IDs:       orders.GetActiveOrder(),
			Workspace: workspaceLabel(key),
		}})
	}

	buckets := orders.Orders()
	keys := make([]domain.WorkspaceKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	views := make([]orderView, 0, len(keys))
	for _, key := range keys {
		views = append(views, orderView{IDs: buckets[key], Workspace: workspaceLabel(key)})
	}
	return writeOrders(os.Stdout, o.Format, views)
}

// OrderSetCmd replaces the manual order
type OrderSetCmd struct {
	OrderScope `embed:""`

	IDs []string `arg:"" help:"Session IDs in the desired order"`
}

// Run executes the set command
func (o *OrderSetCmd) Run(cli *CLI) error {
	orders := o.apply(cli)
	if err := orders.Update(context.Background(), o.IDs); err != nil {
		return err
	}
	fmt.Printf("Manual order of '%s' updated (%d sessions)\n", workspaceLabel(orders.ActiveKey()), len(orders.GetActiveOrder()))
	return nil
}

// OrderClearCmd clears the manual order
type OrderClearCmd struct {
	OrderScope `embed:""`
}

// Run executes the clear command
func (o *OrderClearCmd) Run(cli *CLI) error {
	orders := o.apply(cli)
	if err := orders.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Manual order of '%s' cleared\n", workspaceLabel(orders.ActiveKey()))
	return nil
}

// OrderApplyCmd stores an externally supplied order
type OrderApplyCmd struct {
	OrderScope `embed:""`

	IDs             []string `arg:"" help:"Session IDs in the desired order"`
	TargetWorkspace string   `help:"Bucket the order belongs to (default: the workspace in scope)"`
}

// Run executes the apply command
func (o *OrderApplyCmd) Run(cli *CLI) error {
	orders := o.apply(cli)
	if err := orders.ApplyExternal(context.Background(), o.IDs, o.TargetWorkspace); err != nil {
		return err
	}
	fmt.Printf("Applied order of %d sessions\n", len(o.IDs))
	return nil
}

// OrderMoveCmd drags a session to a new position of the visible list
type OrderMoveCmd struct {
	ListFlags `embed:""`

	ID    string `arg:"" help:"Session ID"`
	Index int    `arg:"" help:"Zero-based target position"`
}

// Run executes the move command
func (o *OrderMoveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	query := o.query(cli.loadedSettings())

	result, err := cli.Container.ListService.Resolve(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to resolve visible sessions: %w", err)
	}

	visible := domain.SessionIDs(result.Visible)
	logging.Logger.Info("Moving session in manual order", "session", o.ID, "index", o.Index, "visible", len(visible))

	if err := cli.Container.OrderService.Move(ctx, visible, o.ID, o.Index); err != nil {
		return err
	}
	fmt.Printf("Session '%s' moved to position %d\n", o.ID, o.Index)
	return nil
}
