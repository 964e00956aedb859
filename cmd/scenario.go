package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/luca-patrignani/cairn/config"
	"github.com/luca-patrignani/cairn/ledger"
	"github.com/luca-patrignani/cairn/network"
	"github.com/luca-patrignani/cairn/node"
)

// scenario wires one node per configured name to a shared bus.
type scenario struct {
	cfg     *config.Config
	logger  *slog.Logger
	bus     *network.Bus[node.Message]
	nodes   map[string]*node.Node
	inboxes map[string]*network.Subscription[node.Message]
	// rejected counts the nodes that refused the tampered block.
	rejected int
}

func newScenario(cfg *config.Config, logger *slog.Logger) *scenario {
	s := &scenario{
		cfg:     cfg,
		logger:  logger,
		bus:     network.NewBus[node.Message](network.WithQueueSize(cfg.QueueSize)),
		nodes:   make(map[string]*node.Node, len(cfg.Nodes)),
		inboxes: make(map[string]*network.Subscription[node.Message], len(cfg.Nodes)),
	}
	for _, name := range cfg.Nodes {
		s.nodes[name] = node.New(ledger.NewKeyPair(), s.bus, node.WithID(name), node.WithLogger(logger))
		s.inboxes[name] = s.bus.Subscribe()
	}
	return s
}

func (s *scenario) close() error {
	return s.bus.Close()
}

// drainAll lets every node process its inbox, in configuration order.
func (s *scenario) drainAll() ([]node.Report, error) {
	var all []node.Report
	for _, name := range s.cfg.Nodes {
		reports, err := s.nodes[name].Drain(s.inboxes[name])
		if err != nil {
			return all, fmt.Errorf("node %s: %w", name, err)
		}
		all = append(all, reports...)
	}
	return all, nil
}

func (s *scenario) runRound(i int, r config.Round) error {
	for _, t := range r.Transfers {
		tx, err := s.nodes[t.From].CreateAndBroadcast(s.nodes[t.To].PublicKey(), t.Amount)
		if err != nil {
			return err
		}
		s.logger.Debug("transaction broadcast", "round", i, "from", t.From, "to", t.To, "amount", t.Amount, "tx", tx.ContentHash().Short())
	}
	if _, err := s.drainAll(); err != nil {
		return err
	}
	if r.Miner == "" {
		return nil
	}
	blk, err := s.nodes[r.Miner].MineAndBroadcast()
	if err != nil {
		return err
	}
	s.logger.Debug("block broadcast", "round", i, "miner", r.Miner, "index", blk.Index, "txs", len(blk.Transactions))
	_, err = s.drainAll()
	return err
}

// tamper broadcasts a well-formed successor of the current tip whose first
// transaction has been altered after signing.
func (s *scenario) tamper() error {
	first := s.nodes[s.cfg.Nodes[0]]
	tip := first.Tip()

	var tx ledger.Transaction
	if len(tip.Transactions) > 0 {
		tx = tip.Transactions[0].Clone()
	} else {
		tx = ledger.NewTransaction(first.PublicKey(), first.PublicKey(), 0)
	}
	tx.Amount += 1_000_000

	forged := ledger.NewBlockAt(tip.Index+1, []ledger.Transaction{tx}, tip.Hash, tip.Time().Add(time.Millisecond))
	if err := s.bus.Publish(node.NewBlockMessage(forged)); err != nil {
		return err
	}
	reports, err := s.drainAll()
	if err != nil {
		return err
	}
	for _, r := range reports {
		if r.Kind == node.KindNewBlock && errors.Is(r.Err, ledger.ErrTransactionInvalid) {
			s.rejected++
		}
	}
	return nil
}

// consistent checks that every node holds the same valid chain.
func (s *scenario) consistent() error {
	want := s.nodes[s.cfg.Nodes[0]].Tip().Hash
	for _, name := range s.cfg.Nodes {
		n := s.nodes[name]
		if err := n.VerifyChain(); err != nil {
			return fmt.Errorf("node %s: %w", name, err)
		}
		if got := n.Tip().Hash; got != want {
			return fmt.Errorf("node %s: tip %s, expected %s", name, got.Short(), want.Short())
		}
	}
	return nil
}

func (s *scenario) run() error {
	for i, r := range s.cfg.Rounds {
		if err := s.runRound(i, r); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	if s.cfg.Tamper {
		if err := s.tamper(); err != nil {
			return fmt.Errorf("tamper: %w", err)
		}
	}
	return s.consistent()
}
