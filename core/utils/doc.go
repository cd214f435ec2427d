// Package utils provides common utility functions for the catalog-manager application.
// It includes helpers for value coercion and number formatting shared by the tabular
// readers and the feature packages.
package utils
