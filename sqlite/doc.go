// Package sqlite registers SQL scalar functions that translate between the
// canonical uuidb64 text form and the hyphenated hex form, so interactive
// queries can look up rows stored with native UUID text:
//
//	SELECT * FROM orders WHERE id = b64uuid('sMHuhm9GTxuNi3hJ51287g');
//	SELECT uuidb64(id) FROM orders;
//
// Functions are registered with modernc.org/sqlite and apply to every
// connection opened after Register.
package sqlite
