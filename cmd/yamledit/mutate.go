package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Update the value at path, adding the key if it does not exist",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			value, err := parseValue(args[2])
			if err != nil {
				return err
			}

			if err := logFacadeError(ed, "set", ed.Update(parsePath(args[1]), value)); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}

func newAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <file> <path> <value>",
		Short: "Append value as the new last element of the sequence at path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			value, err := parseValue(args[2])
			if err != nil {
				return err
			}

			if err := logFacadeError(ed, "append", ed.AppendTo(parsePath(args[1]), value)); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}

func newPrependCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepend <file> <path> <value>",
		Short: "Prepend value as the new first element of the sequence at path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			value, err := parseValue(args[2])
			if err != nil {
				return err
			}

			if err := logFacadeError(ed, "prepend", ed.PrependTo(parsePath(args[1]), value)); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file> <path> <index> <value>",
		Short: "Insert value before the existing element at index in the sequence at path",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}

			value, err := parseValue(args[3])
			if err != nil {
				return err
			}

			if err := logFacadeError(ed, "insert", ed.Insert(parsePath(args[1]), index, value)); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}

func newSpliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splice <file> <path> <index> <delete-count> [value ...]",
		Short: "Remove delete-count elements at index from the sequence at path, then insert the given values there",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}

			deleteCount, err := strconv.Atoi(args[3])
			if err != nil {
				return err
			}

			values := make([]any, 0, len(args)-4)

			for _, raw := range args[4:] {
				v, err := parseValue(raw)
				if err != nil {
					return err
				}

				values = append(values, v)
			}

			if err := logFacadeError(ed, "splice", ed.Splice(parsePath(args[1]), index, deleteCount, values)); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <path>",
		Short: "Remove the element or entry addressed by path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			if err := logFacadeError(ed, "remove", ed.Remove(parsePath(args[1]))); err != nil {
				return err
			}

			return emit(cmd, args[0], ed)
		},
	}
}
