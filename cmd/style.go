package main

import (
	"strings"

	"github.com/pterm/pterm"
	"go.dedis.ch/kyber/v4"

	"github.com/luca-patrignani/cairn/ledger"
	"github.com/luca-patrignani/cairn/node"
)

func shortKey(p kyber.Point) string {
	s := p.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func printState(s *scenario) {
	var chains, pools []pterm.Panel
	for _, name := range s.cfg.Nodes {
		n := s.nodes[name]
		chains = append(chains, pterm.Panel{Data: printChainInfo(name, n)})
		pools = append(pools, pterm.Panel{Data: printPoolInfo(n)})
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		chains,
		pools,
	}).Render()
}

func printChainInfo(name string, n *node.Node) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("key %s", pterm.LightCyan(shortKey(n.PublicKey()))))
	for _, b := range n.Blocks() {
		sb.WriteString(printBlockInfo(b))
	}
	return pbox.WithTitle(pterm.LightYellow(name)).WithTitleTopLeft().Sprint(sb.String())
}

func printBlockInfo(b ledger.Block) string {
	line := pterm.Sprintf("#%d %s <- %s", b.Index, pterm.LightGreen(b.Hash.Short()), b.PreviousHash.Short())
	if len(b.Transactions) == 0 {
		return line + "\n"
	}
	line += pterm.Sprintfln(" (%d txs)", len(b.Transactions))
	for _, tx := range b.Transactions {
		line += pterm.Sprintfln("   %s -> %s: %d", shortKey(tx.Sender), shortKey(tx.Receiver), tx.Amount)
	}
	return line
}

func printPoolInfo(n *node.Node) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4)
	pending := n.Pending()
	if len(pending) == 0 {
		return pbox.WithTitle("pool").WithTitleTopLeft().Sprint(pterm.Gray("empty"))
	}
	var sb strings.Builder
	for _, tx := range pending {
		sb.WriteString(pterm.Sprintfln("%s %s -> %s: %d", tx.ContentHash().Short(), shortKey(tx.Sender), shortKey(tx.Receiver), tx.Amount))
	}
	return pbox.WithTitle(pterm.LightRed("pool")).WithTitleTopLeft().Sprint(sb.String())
}
