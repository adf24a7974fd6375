// Package normalize post-processes a block-encoded replacement chunk to
// prevent dangling line breaks at splice boundaries (spec section 4.4).
package normalize
