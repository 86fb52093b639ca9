package main

import "fmt"

func (cli *commandLine) resetPassword(idOrName, pwd string) error {
	s, err := cli.studentSvc.Lookup(idOrName)
	if err != nil {
		return err
	}
	if _, err = cli.studentSvc.ResetPassword(s.ID, pwd); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "Password updated for %s (%s)\n", s.FullName, s.ID)
	return nil
}

func (cli *commandLine) hashPasswords() error {
	n, err := cli.studentSvc.HashLegacyPasswords()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "%d password(s) hashed\n", n)
	return nil
}
