package sqlinline

const QUpsertFund = `--sql 4f2a7c9e-8d31-4b6a-9c5e-2f1d8a6b3e70
insert into funds(id, title, description, end_at, target, current_amount, donation_recipient, owner, active, created_at, updated_at)
values ($1::bigint, $2::text, $3::text, $4::timestamptz, $5::bigint, $6::bigint, $7::text, $8::text, $9::boolean, $10::timestamptz, now())
on conflict (id) do update
set current_amount = excluded.current_amount,
    active         = excluded.active,
    updated_at     = now();
`

const QListExpiredActiveFunds = `--sql b61d03f5-7e4a-4c28-8a9f-5d2c7b1e9a44
select id, title, description, end_at, target, current_amount, donation_recipient, owner, active, created_at
from funds
where active and end_at < now()
order by end_at asc;
`
