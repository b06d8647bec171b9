package main

import (
	"fmt"
	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/linked"
	"github.com/gostonefire/collections/linearprobing"
	"github.com/gostonefire/collections/maxstack"
	"github.com/gostonefire/collections/pq"
	"github.com/gostonefire/collections/resizing"
	"github.com/spf13/cobra"
	"slices"
	"strconv"
	"strings"
)

// lineContainer - A string container driven by the stack and queue demos
type lineContainer struct {
	kind   string
	remove string
	add    func(item string)
	take   func() (string, error)
	size   func() int
	str    func() string
}

// runContainer - Adds every line to c, except the remove word which takes an item out and prints it
func (A *app) runContainer(cmd *cobra.Command, c lineContainer) error {
	out := cmd.OutOrStdout()

	err := A.readLines(cmd.Name(), cmd.InOrStdin(), out, A.cfg.Quit, func(line string) error {
		if line != c.remove {
			c.add(line)
			return nil
		}

		item, err := c.take()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, item)

		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "(%d left on %s)\n", c.size(), c.kind)
	_, _ = fmt.Fprintf(out, "%s contains: %s\n", strings.ToUpper(c.kind[:1])+c.kind[1:], c.str())

	return nil
}

func (A *app) stackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "resizing array stack: push any line, pop with \"pop\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := resizing.NewStack[string]()
			return A.runContainer(cmd, lineContainer{
				kind: "stack", remove: "pop",
				add: s.Push, take: s.Pop, size: s.Size, str: s.String,
			})
		},
	}
}

func (A *app) queueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "resizing array queue: enqueue any line, dequeue with \"dequeue\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := resizing.NewQueue[string]()
			return A.runContainer(cmd, lineContainer{
				kind: "queue", remove: "dequeue",
				add: q.Enqueue, take: q.Dequeue, size: q.Size, str: q.String,
			})
		},
	}
}

func (A *app) linkedStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linked-stack",
		Short: "linked list stack: push any line, pop with \"pop\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := linked.NewStack[string]()
			return A.runContainer(cmd, lineContainer{
				kind: "stack", remove: "pop",
				add: s.Push, take: s.Pop, size: s.Size, str: s.String,
			})
		},
	}
}

func (A *app) linkedQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linked-queue",
		Short: "linked list queue: enqueue any line, dequeue with \"dequeue\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := linked.NewQueue[string]()
			return A.runContainer(cmd, lineContainer{
				kind: "queue", remove: "dequeue",
				add: q.Enqueue, take: q.Dequeue, size: q.Size, str: q.String,
			})
		},
	}
}

func (A *app) maxStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxstack",
		Short: "max tracking integer stack: PUSH n, POP, MAX, END",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := maxstack.New()
			out := cmd.OutOrStdout()

			err := A.readLines(cmd.Name(), cmd.InOrStdin(), out, "END", func(line string) error {
				fields := strings.Fields(line)
				if len(fields) == 0 {
					return nil
				}

				switch fields[0] {
				case "PUSH":
					if len(fields) != 2 {
						return errs.NewInvalidArgument("PUSH takes one integer")
					}
					num, err := strconv.Atoi(fields[1])
					if err != nil {
						return errs.NewInvalidArgument("PUSH takes one integer, got %q", fields[1])
					}
					s.Push(num)
				case "POP":
					num, err := s.Pop()
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(out, num)
				case "MAX":
					num, err := s.Max()
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintln(out, num)
				default:
					return errs.NewInvalidArgument("unknown command %q", fields[0])
				}

				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, s.String())

			return nil
		},
	}
}

func (A *app) hashTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashtable",
		Short: "linear probing hash table: put k v, get k, delete k, keys, stat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ht, err := linearprobing.NewWithCapacity[string, string](A.cfg.TableCapacity, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			return A.readLines(cmd.Name(), cmd.InOrStdin(), out, A.cfg.Quit, func(line string) error {
				fields := strings.SplitN(strings.TrimSpace(line), " ", 3)

				switch {
				case fields[0] == "put" && len(fields) == 3:
					return ht.Put(fields[1], fields[2])

				case fields[0] == "get" && len(fields) == 2:
					value, found, err := ht.Get(fields[1])
					if err != nil {
						return err
					}
					if !found {
						value = "(not found)"
					}
					_, _ = fmt.Fprintln(out, value)

				case fields[0] == "delete" && len(fields) == 2:
					return ht.Delete(fields[1])

				case fields[0] == "keys" && len(fields) == 1:
					_, _ = fmt.Fprintln(out, strings.Join(slices.Sorted(ht.Keys()), " "))

				case fields[0] == "stat" && len(fields) == 1:
					stat := ht.Stat(false)
					_, _ = fmt.Fprintf(out, "pairs: %d, table size: %d, load factor: %.3f, clusters: %d, longest cluster: %d\n",
						stat.Pairs, stat.TableSize, stat.LoadFactor, stat.Clusters, stat.LongestCluster)

				default:
					return errs.NewInvalidArgument("can not parse %q", line)
				}

				return nil
			})
		},
	}
}

func (A *app) pqCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "pq ordered|unordered",
		Short:     "array max priority queue: insert every line, then drain in descending order",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"ordered", "unordered"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var insert func(string)
			var delMax func() (string, error)
			var isEmpty func() bool

			switch args[0] {
			case "ordered":
				q := pq.NewOrderedArrayMaxPQ[string](A.cfg.PQCapacity)
				insert, delMax, isEmpty = q.Insert, q.DelMax, q.IsEmpty
			default:
				q := pq.NewUnorderedArrayMaxPQ[string](A.cfg.PQCapacity)
				insert, delMax, isEmpty = q.Insert, q.DelMax, q.IsEmpty
			}

			out := cmd.OutOrStdout()
			err := A.readLines(cmd.Name(), cmd.InOrStdin(), out, A.cfg.Quit, func(line string) error {
				insert(line)
				return nil
			})
			if err != nil {
				return err
			}

			for !isEmpty() {
				key, err := delMax()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, key)
			}

			return nil
		},
	}
}
